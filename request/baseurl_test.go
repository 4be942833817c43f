package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type headerMap map[string]string

func (h headerMap) Get(key string) string { return h[key] }

func TestBaseURLFromHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers HeaderGetter
		want    string
	}{
		{"plain", headerMap{"Host": "example.com"}, "http://example.com"},
		{"forwarded https", headerMap{"Host": "example.com", "X-Forwarded-Proto": "https"}, "https://example.com"},
		{"proxy chain", headerMap{"Host": "example.com:8443", "X-Forwarded-Proto": "https, http"}, "https://example.com:8443"},
		{"empty proto header", headerMap{"Host": "h", "X-Forwarded-Proto": " "}, "http://h"},
		{"no host", headerMap{}, "http://"},
		{"host not validated", headerMap{"Host": "not a host!"}, "http://not a host!"},
		{"http.Header", http.Header{"Host": {"api.local"}, "X-Forwarded-Proto": {"https"}}, "https://api.local"},
		{"nil getter", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BaseURLFromHeaders(tc.headers); got != tc.want {
				t.Errorf("BaseURLFromHeaders() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBaseURL(t *testing.T) {
	if got := BaseURL(nil); got != "" {
		t.Errorf("BaseURL(nil) = %q, want empty", got)
	}

	r := httptest.NewRequest(http.MethodGet, "http://shop.example/cart", nil)
	if got := BaseURL(r); got != "http://shop.example" {
		t.Errorf("BaseURL() = %q", got)
	}

	r.Header.Set("X-Forwarded-Proto", "https")
	if got := BaseURL(r); got != "https://shop.example" {
		t.Errorf("BaseURL() with forwarded proto = %q", got)
	}

	r = &http.Request{Header: http.Header{"Host": {"fallback.example"}}}
	if got := BaseURL(r); got != "http://fallback.example" {
		t.Errorf("BaseURL() from header = %q", got)
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, FromContext(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "gin.example"
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Body.String() != "https://gin.example" {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(http.MethodGet, "http://direct.example/", nil)

	if got := FromContext(c); got != "http://direct.example" {
		t.Errorf("FromContext() = %q", got)
	}
}

func TestHandler(t *testing.T) {
	var got string
	h := Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromRequestContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "http://std.example/x", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != "http://std.example" {
		t.Errorf("FromRequestContext() = %q", got)
	}
	if FromRequestContext(req.Context()) != "" {
		t.Error("expected no value outside the handler")
	}
}
