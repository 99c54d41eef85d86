package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"ar-engine/pkg/apperror"
	"ar-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the body reader returns an error; the
// response status is then decided by whichever handler reads the body.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// forbiddenPCIFields are cardholder-data-shaped keys this engine must
// never persist (spec §8 property 8). AR never touches raw card or bank
// account data; that belongs to the processor's tokenization flow.
var forbiddenPCIFields = map[string]bool{
	"card_number":     true,
	"cvv":             true,
	"cvc":             true,
	"account_number":  true,
	"routing_number":  true,
}

// PCIGuard scans every JSON request body for forbidden cardholder-data
// field names at any nesting depth and rejects the request before it
// reaches a handler or touches storage. It buffers and restores the body
// so downstream binding still sees the original payload.
func PCIGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Error(c, apperror.Validation("cannot read request body"))
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		if len(bodyBytes) > 0 {
			var payload interface{}
			if err := json.Unmarshal(bodyBytes, &payload); err == nil {
				if field, found := scanForbiddenFields(payload); found {
					response.Error(c, apperror.ErrPCIFieldPresent(field))
					c.Abort()
					return
				}
			}
		}

		c.Next()
	}
}

// scanForbiddenFields walks an arbitrary decoded JSON value looking for a
// disallowed key at any depth, including inside arrays.
func scanForbiddenFields(v interface{}) (string, bool) {
	switch val := v.(type) {
	case map[string]interface{}:
		for key, nested := range val {
			if forbiddenPCIFields[strings.ToLower(key)] {
				return key, true
			}
			if field, found := scanForbiddenFields(nested); found {
				return field, true
			}
		}
	case []interface{}:
		for _, item := range val {
			if field, found := scanForbiddenFields(item); found {
				return field, true
			}
		}
	}
	return "", false
}
