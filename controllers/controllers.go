package controllers

import (
	"errors"
	"log"
	"net/http"

	"checkitoff/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status. Internal causes are
// logged here and never leave the server.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		log.Printf("unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindConflict:
		status = http.StatusConflict
	case apperrors.KindAuth:
		status = http.StatusUnauthorized
	case apperrors.KindRetryable:
		status = http.StatusServiceUnavailable
	}

	if appErr.Err != nil {
		log.Printf("%s error: %v", appErr.Kind, appErr.Err)
	}

	body := gin.H{"success": false, "message": appErr.Message}
	if appErr.Field != "" {
		body["field"] = appErr.Field
	}
	ctx.JSON(status, body)
}
