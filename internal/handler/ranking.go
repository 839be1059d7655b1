package handler

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	svc *service.RankingService
}

func NewRankingHandler(svc *service.RankingService) *RankingHandler {
	return &RankingHandler{svc: svc}
}

// Rank godoc
// @Summary Rank the user's cards for a purchase
// @Description Returns every held card ordered by reward, the first one is the recommendation
// @Tags ranking
// @Accept json
// @Produce json
// @Param request body RankRequest true "Purchase"
// @Success 200 {object} service.Recommendation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/rank [post]
func (h *RankingHandler) Rank(c *gin.Context) {
	var req RankRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	txType, _ := domain.ParseTransactionType(req.TransactionType)
	rec, err := h.svc.Rank(c.Request.Context(), service.RankRequest{
		UserID:          userID,
		Amount:          req.Amount,
		CategoryID:      req.CategoryID,
		SubCategoryID:   req.SubCategoryID,
		TransactionType: txType,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
