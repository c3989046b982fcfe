package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zephyrtronium/equations"
	"github.com/zephyrtronium/equations/internal/service"
)

// Error codes sent in error bodies.
const (
	codeNotFound         = "EQUATION_NOT_FOUND"
	codeInvalid          = "INVALID_EQUATION"
	codeDivisionByZero   = "DIVISION_BY_ZERO"
	codeVariableNotFound = "VARIABLE_NOT_FOUND"
	codeBadRequest       = "BAD_REQUEST"
	codeRateLimited      = "RATE_LIMITED"
	codeInternal         = "INTERNAL_ERROR"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// classify gives the status and code for an error from the service.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, equations.ErrInvalidExpression):
		return http.StatusBadRequest, codeInvalid
	case errors.Is(err, equations.ErrDivisionByZero):
		return http.StatusBadRequest, codeDivisionByZero
	case errors.Is(err, equations.ErrVariableNotFound):
		return http.StatusBadRequest, codeVariableNotFound
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

func fail(c *gin.Context, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		msg = "internal error"
	}
	abort(c, status, code, msg)
}

func abort(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, errorBody{Code: code, Message: msg})
}

func recovery(c *gin.Context, v any) {
	log.Printf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, v)
	abort(c, http.StatusInternalServerError, codeInternal, "internal error")
}
