package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeecare/hms-backend/internal/domain/entity"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

var statusByKind = map[entity.ErrorKind]int{
	entity.KindValidation: http.StatusBadRequest,
	entity.KindAuth:       http.StatusUnauthorized,
	entity.KindForbidden:  http.StatusForbidden,
	entity.KindNotFound:   http.StatusNotFound,
	entity.KindConflict:   http.StatusConflict,
	entity.KindConnection: http.StatusServiceUnavailable,
}

// StatusAndMessage translates err into the response status and client message.
func StatusAndMessage(err error) (int, string) {
	status, ok := statusByKind[entity.KindOf(err)]
	if !ok {
		return http.StatusInternalServerError, "Internal Server Error"
	}
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return status, verr.Error()
	}
	var appErr *entity.AppError
	if errors.As(err, &appErr) {
		return status, appErr.Message
	}
	return status, err.Error()
}

// ErrorMiddleware turns the last error recorded by any later stage or handler
// into the JSON error response. It must be registered before them.
func ErrorMiddleware(logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, message := StatusAndMessage(err)
		if status >= http.StatusInternalServerError {
			logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		if c.Writer.Written() {
			return
		}
		c.JSON(status, ErrorResponse{Success: false, Message: message})
	}
}
