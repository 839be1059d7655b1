package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Маршруты /api/v1/admin/*. Роль admin проверяет middleware.

func (h *CatalogHandler) CreateBank(c *gin.Context) {
	var req NameRequest
	if !bindJSON(c, &req) {
		return
	}
	bank, err := h.svc.CreateBank(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bank)
}

func (h *CatalogHandler) RenameBank(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req NameRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.RenameBank(c.Request.Context(), id, req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *CatalogHandler) DeleteBank(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteBank(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req NameRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.svc.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) RenameCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req NameRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.RenameCategory(c.Request.Context(), id, req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateSubCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req NameRequest
	if !bindJSON(c, &req) {
		return
	}
	sub, err := h.svc.CreateSubCategory(c.Request.Context(), categoryID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *CatalogHandler) DeleteSubCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}
	subID, ok := pathID(c, "sub_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSubCategory(c.Request.Context(), categoryID, subID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateCard(c *gin.Context) {
	var req CardRequest
	if !bindJSON(c, &req) {
		return
	}
	card, err := h.svc.CreateCard(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *CatalogHandler) UpdateCard(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CardRequest
	if !bindJSON(c, &req) {
		return
	}
	card, err := h.svc.UpdateCard(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CatalogHandler) DeleteCard(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCard(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateRule godoc
// @Summary Create a reward rule
// @Description At most one rule per card, category, sub-category and transaction type
// @Tags admin
// @Accept json
// @Produce json
// @Param request body RuleRequest true "Rule"
// @Success 201 {object} domain.RewardRule
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/admin/rules [post]
func (h *CatalogHandler) CreateRule(c *gin.Context) {
	var req RuleRequest
	if !bindJSON(c, &req) {
		return
	}
	rule, err := h.svc.CreateRule(c.Request.Context(), req.toRule(0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *CatalogHandler) UpdateRule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req RuleRequest
	if !bindJSON(c, &req) {
		return
	}
	rule, err := h.svc.UpdateRule(c.Request.Context(), req.toRule(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *CatalogHandler) DeleteRule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteRule(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
