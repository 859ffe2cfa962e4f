package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error. Causes of internal errors are logged and
// never sent to the client.
func Respond(c *gin.Context, log *slog.Logger, err error) {
	kind := KindOf(err)

	var be BusinessError
	if !errors.As(err, &be) {
		be = BusinessError{Kind: KindInternal, Code: "internal_error", Message: "Erro interno.", Err: err}
	}

	if kind == KindInternal && log != nil {
		log.Error("request failed",
			"path", c.FullPath(),
			"code", be.Code,
			"err", err,
		)
	}

	message := be.Message
	if message == "" {
		message = be.Code
	}

	Write(c, StatusFor(kind), be.Code, message)
}
