// Command iva exposes the iva helpers on the command line.
//
//	iva size 1536 --si=false          # 1.50 KiB
//	iva fetch https://api.example/v1 --format json
//	iva css https://a.example/a.css https://b.example/b.css --out bundle.css
//	echo '[{"n":2},{"n":1}]' | iva sort --key n
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "iva:", err)
		os.Exit(1)
	}
}
