package handlers

import (
	"net/http"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/gin-gonic/gin"
)

// categoryHandler serves the static category tree.
type categoryHandler struct {
	categories *domain.CategorySet
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categories *domain.CategorySet) {
	h := &categoryHandler{categories: categories}

	group := rg.Group("/categories")
	{
		group.GET("", h.listCategories)
		group.GET("/:id/children", h.listChildren)
	}
}

// listCategories godoc
// @Summary List the full category tree
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(h.categories.All()))
}

// listChildren godoc
// @Summary List the direct children of a category
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {array} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{id}/children [get]
func (h *categoryHandler) listChildren(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.categories.ByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(h.categories.Children(id)))
}
