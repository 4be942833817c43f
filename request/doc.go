// Package request derives the public base URL ("proto://host") of an
// inbound HTTP request, honouring X-Forwarded-Proto from a reverse proxy.
//
// It works from raw headers, from an *http.Request, or as gin and net/http
// middleware that stores the result for handlers.
package request
