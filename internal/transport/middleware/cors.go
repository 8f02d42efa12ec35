package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/fritter-backend/internal/config"
)

type corsPolicy struct {
	any         bool
	origins     map[string]struct{}
	methods     string
	headers     string
	maxAge      string
	credentials bool
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	p := corsPolicy{
		origins:     make(map[string]struct{}),
		methods:     cfg.AllowedMethods,
		headers:     cfg.AllowedHeaders,
		maxAge:      strconv.Itoa(cfg.MaxAge),
		credentials: cfg.AllowCredentials,
	}
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			p.any = true
		default:
			p.origins[o] = struct{}{}
		}
	}
	return p
}

func (p corsPolicy) allows(origin string) bool {
	if p.any {
		return true
	}
	_, ok := p.origins[origin]
	return ok
}

// CORS answers preflight requests and decorates cross-origin responses.
// The request origin is echoed back rather than "*" so credentialed
// requests keep working with a wildcard policy.
func CORS(cfg config.CORSConfig) Middleware {
	policy := newCORSPolicy(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			allowed := policy.allows(origin)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				if policy.credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
			if !preflight {
				next.ServeHTTP(w, r)
				return
			}

			if allowed {
				h.Set("Access-Control-Allow-Methods", policy.methods)
				h.Set("Access-Control-Allow-Headers", policy.headers)
				h.Set("Access-Control-Max-Age", policy.maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
