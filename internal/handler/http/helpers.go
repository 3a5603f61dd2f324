package http

import (
	"github.com/gin-gonic/gin"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// ErrorHandler records err for the error middleware and stops the chain.
func ErrorHandler(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Bind decodes the request body according to its content type.
func Bind(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		ErrorHandler(c, entity.NewBadRequestError("Invalid Request Body!"))
		return err
	}
	return nil
}
