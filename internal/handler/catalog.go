package handler

import (
	"card-rewards/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogHandler: справочники для пользователей и их администрирование.
type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListBanks godoc
// @Summary List banks
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Bank
// @Router /api/v1/catalog/banks [get]
func (h *CatalogHandler) ListBanks(c *gin.Context) {
	banks, err := h.svc.ListBanks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, banks)
}

// ListCategories godoc
// @Summary List categories with their sub-categories
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Router /api/v1/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListCards godoc
// @Summary List credit cards
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.CreditCard
// @Router /api/v1/catalog/cards [get]
func (h *CatalogHandler) ListCards(c *gin.Context) {
	cards, err := h.svc.ListCards(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// ListRules godoc
// @Summary List reward rules of a card
// @Tags catalog
// @Produce json
// @Param id path int true "Card id"
// @Success 200 {array} domain.RewardRule
// @Failure 404 {object} map[string]string
// @Router /api/v1/catalog/cards/{id}/rules [get]
func (h *CatalogHandler) ListRules(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rules, err := h.svc.ListRules(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}
