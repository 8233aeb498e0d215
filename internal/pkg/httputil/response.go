package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const RequestIDKey = "request_id"

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Text writes a static plain-text body. Error bodies never carry error detail.
func Text(c *gin.Context, status int, message string) {
	c.String(status, message)
}

func BadRequest(c *gin.Context, message string) {
	Text(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Text(c, http.StatusNotFound, message)
}

// InternalError records err on the context for the access log and answers 500 with message.
func InternalError(c *gin.Context, err error, message string) {
	if err != nil {
		_ = c.Error(err)
	}
	Text(c, http.StatusInternalServerError, message)
}

func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
