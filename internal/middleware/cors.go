package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// OriginPolicy is the set of browser origins allowed to call the API.
type OriginPolicy map[string]struct{}

// NewOriginPolicy allows the local dev frontends plus extra
// (CORS_ALLOWED_ORIGINS=https://app.com,https://admin.app.com).
func NewOriginPolicy(extra []string) OriginPolicy {
	p := make(OriginPolicy, len(devOrigins)+len(extra))
	for _, o := range append(append([]string{}, devOrigins...), extra...) {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			p[o] = struct{}{}
		}
	}
	return p
}

func (p OriginPolicy) Allowed(origin string) bool {
	_, ok := p[origin]
	return ok
}

// CheckOrigin suits websocket.Upgrader: clients that send no Origin (native
// apps, curl) pass, browsers must be on the list.
func (p OriginPolicy) CheckOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || p.Allowed(origin)
}

func CORS(policy OriginPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		if origin := c.GetHeader("Origin"); origin != "" && policy.Allowed(origin) {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		}

		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, X-Request-ID")
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		h.Set("Access-Control-Max-Age", "600")

		// preflight must finish before JWTAuth
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
