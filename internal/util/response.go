package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the data map of a successful reply.
type Response map[string]interface{}

// Business error codes.
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeAuth         = 40101
	CodeNotFound     = 40401
	CodeServerErr    = 50001
)

// Success writes the unified success envelope.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes the unified error envelope.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// Invalid writes a 400 carrying a form's field -> messages map so the
// caller can re-render the step with errors.
func Invalid(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":   CodeInvalidParam,
		"errors": errs,
	})
}
