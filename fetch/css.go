package fetch

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/ivakit/iva/observability"
)

// CSS fetches every URL concurrently as text and returns the bodies joined
// with "\n" in input order. The first failure cancels the remaining
// fetches and is returned; no partial result is produced. An empty list
// yields "".
func (c *Client) CSS(ctx context.Context, urls []string) (string, error) {
	if len(urls) == 0 {
		return "", nil
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanFetchCSS)
	defer span.End()
	span.SetAttributes(attribute.Int(observability.AttrURLCount, len(urls)))

	parts := make([]string, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			text, err := c.Text(gctx, url)
			if err != nil {
				return err
			}
			parts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		observability.SetSpanError(ctx, err)
		return "", err
	}
	return strings.Join(parts, "\n"), nil
}
