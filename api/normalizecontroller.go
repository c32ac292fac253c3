package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketshelf/common"
	"pocketshelf/normalizer"
	"pocketshelf/render"
	"pocketshelf/types"
)

// RegisterNormalizeRoutes registers the CSV converter page and endpoints.
func RegisterNormalizeRoutes(r *gin.Engine, deps Deps) {
	h := &normalizeController{deps: deps}
	r.GET("/normalize", h.handleForm)
	r.POST("/normalize", h.handleFormSubmit)

	g := r.Group("/api/normalize")
	g.POST("", h.handleNormalize)
	g.POST("/publish", h.handlePublish)
}

// NormalizeRequest carries pasted CSV text, without the header row.
type NormalizeRequest struct {
	CSV string `json:"csv"`
}

// SkippedLine describes a dropped input line.
type SkippedLine struct {
	Line   int    `json:"line"`
	Fields int    `json:"fields"`
	Text   string `json:"text"`
}

// NormalizeResponse is the converter result.
type NormalizeResponse struct {
	Output  string         `json:"output"`
	Records []types.Record `json:"records"`
	Skipped []SkippedLine  `json:"skipped,omitempty"`
	Lines   int            `json:"lines"`
}

// Summary describes how many lines were converted.
func (r NormalizeResponse) Summary() string {
	return fmt.Sprintf("%d of %d lines converted", len(r.Records), r.Lines)
}

type normalizeController struct {
	deps Deps
}

// convert normalizes text, consulting the cache when one is configured.
// Only results with at least one record are cached.
func (h *normalizeController) convert(ctx context.Context, text string) (*NormalizeResponse, error) {
	key := common.HashKey(text)
	if h.deps.Cache != nil {
		if cached, ok, err := h.deps.Cache.Get(ctx, key); err != nil {
			h.deps.Log.Warn().Err(err).Msg("normalize cache read failed")
		} else if ok {
			var resp NormalizeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	res, err := h.deps.Normalizer.Normalize(text)
	if err != nil {
		return nil, err
	}

	resp := &NormalizeResponse{Records: res.Records, Lines: res.Lines}
	for _, s := range res.Skipped {
		resp.Skipped = append(resp.Skipped, SkippedLine{Line: s.Line, Fields: s.Fields, Text: s.Text})
	}
	if len(res.Records) == 0 {
		return resp, nil
	}

	if resp.Output, err = normalizer.FormatJSON(res.Records); err != nil {
		return nil, err
	}

	if h.deps.Cache != nil {
		if b, err := json.Marshal(resp); err == nil {
			if err := h.deps.Cache.Set(ctx, key, string(b)); err != nil {
				h.deps.Log.Warn().Err(err).Msg("normalize cache write failed")
			}
		}
	}
	return resp, nil
}

func (h *normalizeController) handleForm(c *gin.Context) {
	h.writePage(c, render.NormalizePage{})
}

func (h *normalizeController) handleFormSubmit(c *gin.Context) {
	text := c.PostForm("csv")
	page := render.NormalizePage{Input: text}

	resp, err := h.convert(c.Request.Context(), text)
	switch {
	case errors.Is(err, normalizer.ErrEmptyInput):
		page.Output = normalizer.MessageEmptyInput
	case err != nil:
		h.deps.Log.Error().Err(err).Msg("normalize")
		page.Output = normalizer.MessageNoValidData
	case len(resp.Records) == 0:
		page.Output = normalizer.MessageNoValidData
		page.Summary = resp.Summary()
	default:
		page.Output = resp.Output
		page.Summary = resp.Summary()
	}
	h.writePage(c, page)
}

func (h *normalizeController) writePage(c *gin.Context, page render.NormalizePage) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := render.WriteNormalizePage(c.Writer, page); err != nil {
		h.deps.Log.Error().Err(err).Msg("render normalize page")
	}
}

// bind reads the request and converts it, writing the error response itself.
func (h *normalizeController) bind(c *gin.Context) (*NormalizeResponse, bool) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	resp, err := h.convert(c.Request.Context(), req.CSV)
	if errors.Is(err, normalizer.ErrEmptyInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": normalizer.MessageEmptyInput})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to normalize: " + err.Error()})
		return nil, false
	}
	if len(resp.Records) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": normalizer.MessageNoValidData, "skipped": resp.Skipped})
		return nil, false
	}
	return resp, true
}

func (h *normalizeController) handleNormalize(c *gin.Context) {
	if resp, ok := h.bind(c); ok {
		c.JSON(http.StatusOK, resp)
	}
}

// handlePublish uploads the converted document so a viewer can load it as its catalog.
func (h *normalizeController) handlePublish(c *gin.Context) {
	if h.deps.Publisher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "publishing is not configured (set S3_BUCKET)"})
		return
	}

	resp, ok := h.bind(c)
	if !ok {
		return
	}

	// An earlier catalog at the key is replaced; the response says so.
	replaced, err := h.deps.Publisher.Exists(c.Request.Context(), h.deps.PublishBucket, h.deps.PublishKey)
	if err != nil {
		replaced = false
		h.deps.Log.Warn().Err(err).Str("key", h.deps.PublishKey).Msg("could not check existing catalog")
	}

	if err := h.deps.Publisher.PutJSON(c.Request.Context(), h.deps.PublishBucket, h.deps.PublishKey, []byte(resp.Output)); err != nil {
		h.deps.Log.Error().Err(err).Msg("publish catalog")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to publish: " + err.Error()})
		return
	}

	h.deps.Log.Info().Int("records", len(resp.Records)).Str("key", h.deps.PublishKey).Bool("replaced", replaced).Msg("catalog published")
	c.JSON(http.StatusOK, gin.H{
		"status":   "published",
		"location": "s3://" + h.deps.PublishBucket + "/" + h.deps.PublishKey,
		"records":  len(resp.Records),
		"replaced": replaced,
	})
}
