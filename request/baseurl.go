package request

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderForwardedProto = "X-Forwarded-Proto"
	HeaderHost           = "Host"

	// ContextKey is the gin context key Middleware stores the base URL under.
	ContextKey = "base_url"

	defaultProto = "http"
)

// HeaderGetter is satisfied by http.Header and by any request descriptor
// that can look up a header by name.
type HeaderGetter interface {
	Get(key string) string
}

// BaseURLFromHeaders returns "{proto}://{host}". The protocol is the first
// entry of X-Forwarded-Proto, or "http" when absent. The host is not
// validated. A nil getter yields "".
func BaseURLFromHeaders(h HeaderGetter) string {
	if h == nil {
		return ""
	}
	return join(h.Get(HeaderForwardedProto), h.Get(HeaderHost))
}

// BaseURL returns the base URL of r, or "" for a nil request. The host is
// taken from r.Host, falling back to a Host header.
func BaseURL(r *http.Request) string {
	if r == nil {
		return ""
	}
	host := r.Host
	if host == "" {
		host = r.Header.Get(HeaderHost)
	}
	return join(r.Header.Get(HeaderForwardedProto), host)
}

func join(forwardedProto, host string) string {
	proto, _, _ := strings.Cut(forwardedProto, ",")
	proto = strings.TrimSpace(proto)
	if proto == "" {
		proto = defaultProto
	}
	return proto + "://" + host
}

// Middleware stores the request's base URL in the gin context under
// ContextKey.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKey, BaseURL(c.Request))
		c.Next()
	}
}

// FromContext returns the base URL stored by Middleware, computing it from
// the request when the middleware did not run.
func FromContext(c *gin.Context) string {
	if v, ok := c.Get(ContextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return BaseURL(c.Request)
}

type baseURLKey struct{}

// Handler is the net/http form of Middleware; read the value with
// FromRequestContext.
func Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), baseURLKey{}, BaseURL(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromRequestContext returns the base URL stored by Handler, or "".
func FromRequestContext(ctx context.Context) string {
	s, _ := ctx.Value(baseURLKey{}).(string)
	return s
}
