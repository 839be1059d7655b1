package handler

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/middleware"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// respondError: единственное место, где доменные ошибки превращаются в HTTP-ответ.
func respondError(c *gin.Context, err error) {
	var (
		verr         *domain.ValidationError
		notFound     *domain.NotFoundError
		integrity    *domain.DataIntegrityError
		transient    *domain.TransientError
		conflict     *domain.ConflictError
		unauthorized *domain.UnauthorizedError
		forbidden    *domain.ForbiddenError
	)

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field, "code": "VALIDATION_ERROR"})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error(), "code": "NOT_FOUND"})
	case errors.As(err, &integrity):
		slog.Error("data integrity error", "card_id", integrity.CardID, "rule_ids", integrity.RuleIDs, "path", c.FullPath())
		c.JSON(http.StatusConflict, gin.H{"error": integrity.Error(), "code": "DATA_INTEGRITY_ERROR"})
	case errors.As(err, &transient):
		slog.Warn("transient error", "op", transient.Op, "error", transient.Err, "path", c.FullPath())
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable", "code": "TRANSIENT_ERROR", "retryable": true})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error(), "code": "CONFLICT"})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": unauthorized.Error(), "code": "UNAUTHORIZED"})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": forbidden.Error(), "code": "FORBIDDEN"})
	default:
		slog.Error("request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "code": "INTERNAL_ERROR"})
	}
}

// bindJSON разбирает тело и прогоняет валидатор. При ошибке ответ уже отправлен.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, &domain.ValidationError{Field: "body", Message: "Invalid JSON"})
		return false
	}
	if err := validateStruct(dst); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

func currentUser(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user_id missing"})
		return 0, false
	}
	return userID, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, &domain.ValidationError{Field: name, Message: "must be a positive integer"})
		return 0, false
	}
	return id, true
}
