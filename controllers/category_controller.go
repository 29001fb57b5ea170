package controllers

import (
	"errors"
	"strconv"

	"menucloud/pkg/resp"
	"menucloud/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Catalog *services.CatalogService
}

func NewCategoryController(catalog *services.CatalogService) *CategoryController {
	return &CategoryController{Catalog: catalog}
}

// GET /menu/categories
func (ctl *CategoryController) List(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}

	cats, err := ctl.Catalog.ListCategories(restID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Description  string `json:"description" binding:"max=500"`
	Icon         string `json:"icon" binding:"max=50"`
	DisplayOrder int    `json:"displayOrder"`
	IsVisible    *bool  `json:"isVisible"`
}

// POST /menu/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	cat, err := ctl.Catalog.CreateCategory(restID, services.CategoryInput{
		Name:         req.Name,
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		IsVisible:    visible,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, "category name required")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	DisplayOrder *int    `json:"displayOrder"`
	IsVisible    *bool   `json:"isVisible"`
}

// PATCH /menu/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := ctl.Catalog.UpdateCategory(restID, uint(id), services.CategoryUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		IsVisible:    req.IsVisible,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "category not found")
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "category name cannot be empty")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, cat)
}

// DELETE /menu/categories/:id — cascades to the category's items.
func (ctl *CategoryController) Delete(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	if err := ctl.Catalog.DeleteCategory(restID, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

type ReorderCategoriesRequest struct {
	CategoryIDs []uint `json:"categoryIds" binding:"required"`
}

// POST /menu/categories/reorder
func (ctl *CategoryController) Reorder(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}

	var req ReorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Catalog.ReorderCategories(restID, req.CategoryIDs); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "categories reordered"})
}
