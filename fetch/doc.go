// Package fetch retrieves JSON and text documents over HTTP GET.
//
// A Client decodes a response according to a Format and reports failures
// as a classified *Error; nothing is retried or swallowed. A non-2xx
// response is still a response: its body is decoded and returned unless
// Config.FailOnStatus is set. CSS fetches a
// set of stylesheets concurrently and joins them in input order, failing
// as soon as any one fetch fails.
//
//	c, err := fetch.New(fetch.Config{Timeout: 10 * time.Second})
//	doc, err := c.Basic(ctx, "https://example.com/data.json", fetch.FormatJSON)
//	css, err := c.CSS(ctx, []string{"https://cdn.example/a.css", "https://cdn.example/b.css"})
//
// The package-level BasicFetch and FetchCSS use a shared default client.
package fetch
