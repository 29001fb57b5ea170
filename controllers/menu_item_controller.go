package controllers

import (
	"errors"
	"strconv"

	"menucloud/pkg/resp"
	"menucloud/services"

	"github.com/gin-gonic/gin"
)

type MenuItemController struct {
	Catalog *services.CatalogService
}

func NewMenuItemController(catalog *services.CatalogService) *MenuItemController {
	return &MenuItemController{Catalog: catalog}
}

// GET /menu/items?categoryId=
func (ctl *MenuItemController) List(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}

	var categoryID uint
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		categoryID = uint(id)
	}

	items, err := ctl.Catalog.ListItems(restID, categoryID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type CreateMenuItemRequest struct {
	CategoryID   uint     `json:"categoryId" binding:"required"`
	Name         string   `json:"name" binding:"required,max=150"`
	Description  string   `json:"description" binding:"max=1000"`
	BasePrice    *float64 `json:"basePrice"`
	DisplayOrder int      `json:"displayOrder"`
	IsVisible    *bool    `json:"isVisible"`
	IsFeatured   bool     `json:"isFeatured"`
}

// POST /menu/items
func (ctl *MenuItemController) Create(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	item, err := ctl.Catalog.CreateItem(restID, services.MenuItemInput{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		DisplayOrder: req.DisplayOrder,
		IsVisible:    visible,
		IsFeatured:   req.IsFeatured,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "category not found")
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "invalid item: name required, price must be >= 0")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, item)
}

type UpdateMenuItemRequest struct {
	CategoryID   *uint    `json:"categoryId"`
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	BasePrice    *float64 `json:"basePrice"`
	ClearPrice   bool     `json:"clearPrice"`
	DisplayOrder *int     `json:"displayOrder"`
	IsVisible    *bool    `json:"isVisible"`
	IsFeatured   *bool    `json:"isFeatured"`
}

// PATCH /menu/items/:id
func (ctl *MenuItemController) Update(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Catalog.UpdateItem(restID, uint(id), services.MenuItemUpdate{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		ClearPrice:   req.ClearPrice,
		DisplayOrder: req.DisplayOrder,
		IsVisible:    req.IsVisible,
		IsFeatured:   req.IsFeatured,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "item not found")
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "invalid item: name required, price must be >= 0")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/items/:id
func (ctl *MenuItemController) Delete(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := ctl.Catalog.DeleteItem(restID, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item deleted"})
}

type ReorderItemsRequest struct {
	CategoryID uint   `json:"categoryId" binding:"required"`
	ItemIDs    []uint `json:"itemIds" binding:"required"`
}

// POST /menu/items/reorder
func (ctl *MenuItemController) Reorder(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}

	var req ReorderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Catalog.ReorderItems(restID, req.CategoryID, req.ItemIDs); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "items reordered"})
}
