package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// JSONBody reads JSON request bodies up to maxBytes, rejects malformed ones
// and leaves the body readable by handlers.
func JSONBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.ContentType() != binding.MIMEJSON {
			c.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1))
		if err != nil {
			abortWith(c, entity.NewBadRequestError("Unable To Read Request Body!"))
			return
		}
		if int64(len(body)) > maxBytes {
			abortWith(c, entity.NewBadRequestError("Request Body Too Large!"))
			return
		}
		if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
			abortWith(c, entity.NewBadRequestError("Invalid JSON Body!"))
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Set(gin.BodyBytesKey, body)
		c.Next()
	}
}

// URLEncoded parses application/x-www-form-urlencoded bodies into the request form.
func URLEncoded() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() == binding.MIMEPOSTForm {
			if err := c.Request.ParseForm(); err != nil {
				abortWith(c, entity.NewBadRequestError("Invalid Form Body!"))
				return
			}
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
