package api

import (
	"github.com/gin-gonic/gin"
)

// extractUserID extracts the requesting user from proxy headers when the
// body does not name one. Recorded for attribution only, never enforced.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy) > "".
func extractUserID(c *gin.Context) string {
	if user := c.GetHeader("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.GetHeader("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.GetHeader("X-Remote-User"); user != "" {
		return user
	}
	return ""
}
