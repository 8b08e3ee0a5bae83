package response

import (
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// Success writes the standard success envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// Created writes the success envelope with a 201 status.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// List writes the success envelope for collections, including a count.
func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// Fail writes the error envelope. message is a string or a list of
// strings (field validation).
func Fail(c *gin.Context, status int, message interface{}) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// Error is the single translation stage every unhandled failure passes
// through. It maps structural causes to a stable (status, message) pair
// and logs the failure with request context before responding.
func Error(c *gin.Context, err error) {
	status, message := translate(err)

	logError(c, status, err)

	Fail(c, status, message)
	c.Abort()
}

func translate(err error) (int, interface{}) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		messages := make([]string, 0, len(ve))
		for _, fe := range ve {
			messages = append(messages, fieldMessage(fe))
		}
		return http.StatusBadRequest, messages
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	if errors.As(err, &unmarshalTypeError) || errors.As(err, &syntaxError) {
		return http.StatusBadRequest, service.ErrMalformedBody.Error()
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return http.StatusBadRequest, service.ErrDuplicateKey.Error()
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, service.ErrResourceNotFound.Error()
	}

	if status, ok := service.ErrorMap[err]; ok {
		return status, err.Error()
	}

	if config.IsProduction() {
		return http.StatusInternalServerError, service.ErrInternal.Error()
	}
	return http.StatusInternalServerError, err.Error()
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please add a %s", field)
	case "email":
		return "Please add a valid email"
	case "max":
		return fmt.Sprintf("%s cannot be more than %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on %s", field, fe.Tag())
	}
}

func logError(c *gin.Context, status int, err error) {
	ctx := c.Request.Context()
	fields := []any{
		log.String("method", c.Request.Method),
		log.String("path", c.Request.URL.Path),
		log.String("ip", c.ClientIP()),
		log.Int("status", status),
		log.Any("err", err),
	}

	if status >= http.StatusInternalServerError {
		log.ErrorContext(ctx, "Server Error", fields...)
	} else {
		log.WarnContext(ctx, "Client Error", fields...)
	}
}
