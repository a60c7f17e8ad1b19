package apihandlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkmind/internal/app"
	"linkmind/internal/classify"
	"linkmind/internal/dupes"
	"linkmind/internal/keywords"
	"linkmind/internal/models"
	"linkmind/internal/orchestrator"
	"linkmind/internal/registry"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

type classifyRequest struct {
	Title string          `json:"title" binding:"required"`
	URL   string          `json:"url" binding:"required"`
	Rules []classify.Rule `json:"rules,omitempty"`
}

// ClassifyHandler classifies a single title/URL pair.
func (h *APIHandler) ClassifyHandler(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, classify.Classify(req.Title, req.URL, req.Rules))
}

type classifyBatchRequest struct {
	Bookmarks []classify.Input `json:"bookmarks" binding:"required"`
	Rules     []classify.Rule  `json:"rules,omitempty"`
}

// ClassifyBatchHandler classifies a collection, keyed by URL.
func (h *APIHandler) ClassifyBatchHandler(c *gin.Context) {
	var req classifyBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, classify.ClassifyBatch(req.Bookmarks, req.Rules))
}

type keywordsRequest struct {
	Text          string `json:"text" binding:"required"`
	MaxTags       int    `json:"max_tags,omitempty"`
	MinWordLength int    `json:"min_word_length,omitempty"`
}

// KeywordsHandler extracts tag candidates from text.
func (h *APIHandler) KeywordsHandler(c *gin.Context) {
	var req keywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cfg := keywords.DefaultConfig()
	if req.MaxTags > 0 {
		cfg.MaxTags = req.MaxTags
	}
	if req.MinWordLength > 0 {
		cfg.MinWordLength = req.MinWordLength
	}
	c.JSON(http.StatusOK, keywords.Extract(req.Text, cfg))
}

type duplicatesRequest struct {
	Bookmarks []models.Bookmark `json:"bookmarks" binding:"required"`
	Threshold float64           `json:"threshold,omitempty"`
}

// DuplicatesHandler groups near-duplicates within the posted collection.
func (h *APIHandler) DuplicatesHandler(c *gin.Context) {
	var req duplicatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	threshold := req.Threshold
	if threshold == 0 {
		threshold = dupes.DefaultThreshold
	}
	if threshold < 0 || threshold > 1 {
		BadRequest(c, fmt.Sprintf("threshold must be in [0,1], got %v", threshold))
		return
	}

	groups := dupes.FindGroups(req.Bookmarks, threshold)
	c.JSON(http.StatusOK, gin.H{
		"duplicate_groups": groups,
		"threshold":        threshold,
	})
}

type runFeatureRequest struct {
	ToolIDs   []string          `json:"tool_ids,omitempty"`
	Bookmarks []models.Bookmark `json:"bookmarks,omitempty"`
}

type outcomeView struct {
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// RunFeatureHandler executes a feature's tool bundle. Tool-level failures
// are reported inside the outcome map, not as an HTTP error; only a
// disabled feature or a configuration problem fails the request.
func (h *APIHandler) RunFeatureHandler(c *gin.Context) {
	featureID := c.Param("id")

	var req runFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	toolIDs := req.ToolIDs
	if len(toolIDs) == 0 {
		toolIDs = orchestrator.FeatureTools(featureID)
	}

	outcomes, err := h.App.Executor.ExecuteFeature(c.Request.Context(), featureID, toolIDs, registry.Input{
		Bookmarks: req.Bookmarks,
	})
	if err != nil {
		if errors.Is(err, models.ErrFeatureDisabled) {
			Forbidden(c, err.Error())
			return
		}
		Internal(c, fmt.Sprintf("RunFeatureHandler: feature %s failed: %v", featureID, err))
		return
	}

	views := make(map[string]outcomeView, len(outcomes))
	for id, outcome := range outcomes {
		view := outcomeView{Result: outcome.Result}
		if outcome.Err != nil {
			view.Error = outcome.Err.Error()
		}
		views[id] = view
	}
	c.JSON(http.StatusOK, gin.H{"feature_id": featureID, "results": views})
}

// ToolStatusHandler lists every configured tool's gating state under the
// latest configuration snapshot.
func (h *APIHandler) ToolStatusHandler(c *gin.Context) {
	snap, err := h.App.ConfigLoader.Load()
	if err != nil {
		Internal(c, "ToolStatusHandler: failed to load config: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"tools": h.App.Registry.Statuses(snap)})
}
