// Package middleware holds the HTTP middleware installed by the REST router:
// request ids, panic recovery, access logging, metrics, CORS, per-client
// rate limiting and bearer-token identity resolution.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler. It has the same
// shape chi's Router.Use accepts.
type Middleware func(http.Handler) http.Handler
