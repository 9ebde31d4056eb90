// middleware.go - request ids and privacy-conscious request logging
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/biancatraining/promenade/internal/shared"
)

const requestIDKey = "request_id"

var hashingSalt = generateSalt()

// generateSalt returns a random per-process salt. Hashed client addresses
// stop matching after a restart.
func generateSalt() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to generate hashing salt: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}

// hashIP shortens the salted sha256 of a client address to 16 hex chars,
// enough to group one visitor's requests in the log without storing the IP.
func hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// requestID tags every request with an id, reusing a well-formed incoming X-Request-ID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = shared.GenerateID()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Assets and health checks log at debug level
func quietPath(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/healthz"
}

// requestLogger replaces gin's default logger. Clients sending DNT: 1 are
// logged without an address.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		reqLogger := shared.WithLogger(logger, "request_id", c.GetString(requestIDKey))
		kv := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if c.GetHeader("DNT") != "1" {
			kv = append(kv, "client", hashIP(c.ClientIP()))
		}

		switch {
		case len(c.Errors) > 0:
			reqLogger.Error("request failed", append(kv, "error", c.Errors.String())...)
		case quietPath(path):
			reqLogger.Debug("request", kv...)
		default:
			reqLogger.Info("request", kv...)
		}
	}
}
