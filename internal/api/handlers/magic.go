package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/api/middleware"
	"github.com/emberwick/storefront-api/internal/domain"
	"github.com/emberwick/storefront-api/internal/repository"
	"github.com/emberwick/storefront-api/internal/service"
)

// HandleMagicRequestSubmit runs the magic-request pipeline for a prompt and
// size. The pipeline keeps running if the caller disconnects, so the persisted
// request always reaches a terminal state that GET can report.
func HandleMagicRequestSubmit(magic *service.MagicRequestService, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, requestHash, existingRequestID, isExisting := middleware.GetIdempotencyInfo(c)
		if isExisting {
			requestID, err := uuid.Parse(existingRequestID)
			if err != nil {
				logger.Error("Invalid existing request ID from idempotency", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}

			status, err := magic.GetStatus(c.Request.Context(), requestID)
			if err != nil {
				respondError(c, logger, err)
				return
			}
			c.JSON(http.StatusOK, status)
			return
		}

		var req service.MagicRequestSubmission
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		// Detached from the request context: a dropped connection must not
		// abandon a half-submitted pipeline.
		ctx := context.WithoutCancel(c.Request.Context())

		result, err := magic.Submit(ctx, req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		if key != "" {
			idempKey := &domain.IdempotencyKey{
				Key:            key,
				MagicRequestID: uuid.MustParse(result.RequestID),
				RequestHash:    requestHash,
			}
			if err := repos.IdempotencyKey.Create(ctx, idempKey); err != nil {
				logger.Warn("Failed to store idempotency key", zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, result)
	}
}

// HandleMagicRequestStatus is the poll target: clients poll it until the
// returned status is terminal.
func HandleMagicRequestStatus(magic *service.MagicRequestService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
			return
		}

		status, err := magic.GetStatus(c.Request.Context(), requestID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, status)
	}
}
