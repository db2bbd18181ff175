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

const exampleTableMissingMessage = "Examples table not found. Please run the database setup first."

type ExampleHandler struct {
	exampleService *service.ExampleService
}

func NewExampleHandler() *ExampleHandler {
	return &ExampleHandler{exampleService: service.NewExampleService()}
}

func (h *ExampleHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	examples, err := h.exampleService.List(userID)
	if err != nil {
		respondExampleError(c, err, "failed to list examples")
		return
	}
	if examples == nil {
		examples = []*model.Example{}
	}
	c.JSON(http.StatusOK, gin.H{"examples": examples})
}

func (h *ExampleHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	example, err := h.exampleService.Get(userID, id)
	if err != nil {
		respondExampleError(c, err, "failed to get example")
		return
	}
	if example == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "example not found"})
		return
	}
	c.JSON(http.StatusOK, example)
}

func (h *ExampleHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req model.ExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	example, err := h.exampleService.Create(userID, &req)
	if err != nil {
		respondExampleError(c, err, "failed to create example")
		return
	}
	c.JSON(http.StatusCreated, example)
}

func (h *ExampleHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	var req model.ExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	example, err := h.exampleService.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrExampleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "example not found"})
			return
		}
		respondExampleError(c, err, "failed to update example")
		return
	}
	c.JSON(http.StatusOK, example)
}

func (h *ExampleHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	if err := h.exampleService.Delete(userID, id); err != nil {
		if errors.Is(err, repository.ErrExampleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "example not found"})
			return
		}
		respondExampleError(c, err, "failed to delete example")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "example deleted"})
}

func respondExampleError(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, repository.ErrTableMissing) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": exampleTableMissingMessage})
		return
	}
	log.WithError(err).Error(logMsg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
}
