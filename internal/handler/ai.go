package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fandyandika/hello-saas/internal/ai"
	"github.com/fandyandika/hello-saas/internal/middleware"
	"github.com/fandyandika/hello-saas/internal/model"
	"github.com/fandyandika/hello-saas/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type AIHandler struct {
	gateway        *ai.Gateway
	exampleService *service.ExampleService
	logService     *service.GenerationLogService
}

func NewAIHandler(gateway *ai.Gateway, exampleService *service.ExampleService, logService *service.GenerationLogService) *AIHandler {
	return &AIHandler{
		gateway:        gateway,
		exampleService: exampleService,
		logService:     logService,
	}
}

// Generate composes the final prompt from the user's saved examples and
// runs it through the gateway. Classified failures come back as {error}
// with their status; everything provider-shaped resolves to the success
// body, possibly with degraded content.
func (h *AIHandler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	// Validate before composing: examples must not turn a blank prompt
	// into a non-empty one.
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	userID := middleware.GetUserID(c)
	chosen := h.chooseExamples(userID, req.UsedExamples, req.ExampleIDs)

	gwReq := req
	gwReq.Prompt = prompt
	if len(chosen) > 0 {
		gwReq.Prompt = ai.ComposePrompt(prompt, chosen)
	}
	gwReq.UsedExamples = req.UsedExamples && len(chosen) > 0

	resp, err := h.gateway.Generate(c.Request.Context(), &gwReq)
	if err != nil {
		var reqErr *ai.RequestError
		if errors.As(err, &reqErr) {
			c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
			return
		}
		// Transport, parse, or unclassified provider failure. Full context
		// stays in the server log; callers get a generic message.
		log.WithError(err).Error("ai generation failed")
		h.logService.RecordFailure(userID, ai.NormalizeModel(req.ClientModel, ""), "provider_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate AI response"})
		return
	}

	h.logService.RecordSuccess(userID, resp.Metadata)
	c.JSON(http.StatusOK, resp)
}

// Estimate returns the advisory token estimate for the current selection.
func (h *AIHandler) Estimate(c *gin.Context) {
	var req model.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := middleware.GetUserID(c)
	chosen := h.chooseExamples(userID, req.UsedExamples, req.ExampleIDs)

	c.JSON(http.StatusOK, model.EstimateResponse{
		EstimatedTokens: ai.EstimateTokens(strings.TrimSpace(req.Prompt), len(chosen)),
		ExamplesChosen:  len(chosen),
	})
}

func (h *AIHandler) Usage(c *gin.Context) {
	userID := middleware.GetUserID(c)

	summary, err := h.logService.UsageSummary(userID)
	if err != nil {
		log.WithError(err).Error("usage summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load usage summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AIHandler) History(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	logs, err := h.logService.Recent(userID, limit)
	if err != nil {
		log.WithError(err).Error("generation history failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load generation history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// chooseExamples loads the user's examples and applies the selection
// policy. A fetch failure degrades to composing without examples; the
// generation itself still proceeds.
func (h *AIHandler) chooseExamples(userID string, usedExamples bool, exampleIDs []string) []*model.Example {
	if !usedExamples {
		return nil
	}
	examples, err := h.exampleService.List(userID)
	if err != nil {
		log.WithError(err).Warn("failed to fetch examples, composing without them")
		return nil
	}
	return ai.ChooseExamples(examples, exampleIDs)
}
