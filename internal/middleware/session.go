package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderSessionID carries the visitor session between requests.
	HeaderSessionID = "X-Session-ID"
	// ContextKeySessionID is the gin context key holding the session ID.
	ContextKeySessionID = "session_id"
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,128}$`)

// Session resolves the visitor session from X-Session-ID. A missing or
// malformed header gets a fresh ID. The ID is always echoed back.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(HeaderSessionID)
		if !sessionIDPattern.MatchString(sessionID) {
			sessionID = uuid.New().String()
		}
		c.Set(ContextKeySessionID, sessionID)
		c.Header(HeaderSessionID, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session ID set by Session, or "" if absent.
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
