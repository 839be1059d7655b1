package handler

import (
	"card-rewards/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserCardHandler struct {
	svc *service.UserCardService
}

func NewUserCardHandler(svc *service.UserCardService) *UserCardHandler {
	return &UserCardHandler{svc: svc}
}

// List godoc
// @Summary List the user's cards
// @Tags cards
// @Produce json
// @Success 200 {array} domain.UserCreditCard
// @Router /api/v1/cards [get]
func (h *UserCardHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cards, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// Add godoc
// @Summary Add a card to the user's wallet
// @Description Only the last 4 digits and the expiry are stored
// @Tags cards
// @Accept json
// @Produce json
// @Param request body AddCardRequest true "Card"
// @Success 201 {object} domain.UserCreditCard
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/cards [post]
func (h *UserCardHandler) Add(c *gin.Context) {
	var req AddCardRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	uc, err := h.svc.Add(c.Request.Context(), service.AddCardRequest{
		UserID:      userID,
		CardID:      req.CardID,
		Last4:       req.Last4,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, uc)
}

// Remove godoc
// @Summary Remove a card from the user's wallet
// @Tags cards
// @Param id path int true "User card id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/cards/{id} [delete]
func (h *UserCardHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
