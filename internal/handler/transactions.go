package handler

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	recorder *service.Recorder
}

func NewTransactionHandler(recorder *service.Recorder) *TransactionHandler {
	return &TransactionHandler{recorder: recorder}
}

// Record godoc
// @Summary Record a purchase made with a held card
// @Description Adds the earned reward to the monthly cap usage of the matched rule
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body RecordTransactionRequest true "Purchase"
// @Success 201 {object} domain.RecordedTransaction
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Record(c *gin.Context) {
	var req RecordTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	txType, _ := domain.ParseTransactionType(req.TransactionType)
	in := service.RecordRequest{
		UserID:          userID,
		UserCardID:      req.UserCardID,
		Amount:          req.Amount,
		CategoryID:      req.CategoryID,
		SubCategoryID:   req.SubCategoryID,
		TransactionType: txType,
	}
	if req.OccurredAt != nil {
		in.OccurredAt = *req.OccurredAt
	}

	recorded, err := h.recorder.Record(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recorded)
}
