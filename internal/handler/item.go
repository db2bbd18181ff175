package handler

import (
	"errors"
	"net/http"

	"github.com/fandyandika/hello-saas/internal/middleware"
	"github.com/fandyandika/hello-saas/internal/model"
	"github.com/fandyandika/hello-saas/internal/repository"
	"github.com/fandyandika/hello-saas/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const tableMissingMessage = "Items table not found. Please run the database setup first."

type ItemHandler struct {
	itemService *service.ItemService
}

func NewItemHandler() *ItemHandler {
	return &ItemHandler{itemService: service.NewItemService()}
}

func (h *ItemHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	items, err := h.itemService.List(userID)
	if err != nil {
		respondItemError(c, err, "failed to list items")
		return
	}
	if items == nil {
		items = []*model.Item{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ItemHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	item, err := h.itemService.Get(userID, id)
	if err != nil {
		respondItemError(c, err, "failed to get item")
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Search(c *gin.Context) {
	userID := middleware.GetUserID(c)
	query := c.Query("q")

	items, err := h.itemService.Search(userID, query)
	if err != nil {
		respondItemError(c, err, "failed to search items")
		return
	}
	if items == nil {
		items = []*model.Item{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ItemHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req model.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	item, err := h.itemService.Create(userID, &req)
	if err != nil {
		respondItemError(c, err, "failed to create item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	var req model.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	item, err := h.itemService.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		respondItemError(c, err, "failed to update item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	if err := h.itemService.Delete(userID, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		respondItemError(c, err, "failed to delete item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

// respondItemError distinguishes an unprovisioned table, which gets setup
// instructions, from everything else.
func respondItemError(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, repository.ErrTableMissing) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": tableMissingMessage})
		return
	}
	log.WithError(err).Error(logMsg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
}
