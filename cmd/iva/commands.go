package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivakit/iva/errors"
	"github.com/ivakit/iva/fetch"
	"github.com/ivakit/iva/util"
	"github.com/ivakit/iva/validation"
	"github.com/ivakit/iva/version"
)

func newSizeCmd() *cobra.Command {
	var (
		si   bool
		dp   int
		long bool
	)
	cmd := &cobra.Command{
		Use:   "size <bytes>",
		Short: "Format a byte count, e.g. 1536 -> 1.54 KB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bytes, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.InvalidFormat("bytes", "a number")
			}
			if err := validation.New().Range("dp", dp, 0, 100).Validate(); err != nil {
				return err
			}
			out := util.HumanFileSize(bytes, util.SizeConfig{SI: &si, DP: &dp, Long: long})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&si, "si", true, "use SI units (powers of 1000) instead of IEC (1024)")
	cmd.Flags().IntVar(&dp, "dp", 2, "decimal places")
	cmd.Flags().BoolVar(&long, "long", false, "spell out unit names")
	return cmd
}

func newParseSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-size <size>",
		Short: "Convert a size such as 1.5MB or 2 GiB to bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := util.ParseSize(args[0], math.MinInt64)
			if n == math.MinInt64 {
				return errors.InvalidFormat("size", "a number with an optional unit such as 10MB")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
}

func newBoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bool <value>",
		Short: "Interpret a string as a boolean (true, yes, 1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), util.StringToBoolean(args[0]))
			return err
		},
	}
}

func newSortCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "sort --key <path>",
		Short: "Sort a JSON array read from stdin by a key path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.Required("key", key); err != nil {
				return err
			}
			dec := json.NewDecoder(cmd.InOrStdin())
			dec.UseNumber()
			var list []any
			if err := dec.Decode(&list); err != nil {
				return errors.Decode("stdin", "json", err)
			}
			return writeJSON(cmd.OutOrStdout(), util.SortByKey(list, key))
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "key path, e.g. user.age or tags[0]")
	return cmd
}

func newFetchCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "GET a URL and print the decoded body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			v := validation.New().
				URL("url", url).
				OneOf("format", format, fetch.Formats)
			if err := v.Validate(); err != nil {
				return err
			}

			a.console.Initialize("fetch " + url)
			data, err := a.client.Basic(cmd.Context(), url, fetch.Format(format))
			if err != nil {
				a.console.Error("fetch failed", err, map[string]any{"url": url})
				return err
			}
			a.console.Fetch(describe(data), url)

			if s, ok := data.(string); ok {
				_, err = io.WriteString(cmd.OutOrStdout(), s)
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(fetch.FormatJSON), "response format: "+strings.Join(fetch.Formats, ", "))
	return cmd
}

func newCSSCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "css <url>...",
		Short: "Fetch stylesheets concurrently and concatenate them in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, urls []string) error {
			if err := validation.New().URLs("urls", urls).Validate(); err != nil {
				return err
			}

			a.console.Initialize(fmt.Sprintf("css %d stylesheets", len(urls)))
			css, err := a.client.CSS(cmd.Context(), urls)
			if err != nil {
				a.console.Error("css fetch failed", err)
				return err
			}

			if out == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), css)
				return err
			}
			if err := os.WriteFile(out, []byte(css), 0o644); err != nil {
				return errors.Internal(err)
			}
			a.console.Load(out, util.HumanFileSize(len(css)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Skips the root's config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return err
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describe summarises a decoded body for the console.
func describe(data any) string {
	switch v := data.(type) {
	case string:
		return util.HumanFileSize(len(v)) + " text"
	case []any:
		return fmt.Sprintf("array of %d", len(v))
	case map[string]any:
		return fmt.Sprintf("object with %d keys", len(v))
	default:
		return fmt.Sprintf("%T", v)
	}
}
