package httpx

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// MessageResponse is the acknowledgement body of write endpoints.
// swagger:model
type MessageResponse struct {
	Message string `json:"message"`
}

func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: msg})
}

// Internal logs err with the request id and answers a generic 500.
func Internal(c *gin.Context, action string, err error) {
	rid, _ := c.Get("rid")
	log.Printf("[http] rid=%v %s failed: %v", rid, action, err)
	Fail(c, http.StatusInternalServerError, action+" failed")
}

// BindFailed answers 400 for a body gin could not bind, naming the first
// field that failed a binding tag.
func BindFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		Fail(c, http.StatusBadRequest, fmt.Sprintf("invalid %s", lowerFirst(verrs[0].Field())))
		return
	}
	Fail(c, http.StatusBadRequest, "invalid json")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
