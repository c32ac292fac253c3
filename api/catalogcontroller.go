package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketshelf/catalog"
	"pocketshelf/render"
	"pocketshelf/types"
)

// RegisterCatalogRoutes registers the catalog page and its JSON endpoints.
func RegisterCatalogRoutes(r *gin.Engine, deps Deps) {
	h := &catalogController{deps: deps}
	if deps.Catalog != nil {
		h.snapshot = catalog.Derive(deps.Catalog)
	}
	r.GET("/", h.handlePage)
	g := r.Group("/api")
	g.GET("/catalog", h.handleRecords)
	g.GET("/tags", h.handleTags)
}

type catalogController struct {
	deps     Deps
	snapshot *catalog.Snapshot
}

// filterFromQuery reads ?status= and ?tag=. Only one dimension filters at a
// time, so a concrete tag wins over a status.
func filterFromQuery(c *gin.Context) catalog.FilterState {
	f := catalog.NewFilterState()
	if status := c.Query("status"); status != "" {
		f = f.SetStatus(status)
	}
	if tag := c.Query("tag"); tag != "" && tag != types.FilterAll {
		f = f.SetTag(tag)
	}
	return f
}

// handlePage renders the catalog page through a per-request engine. The
// catalog itself is shared and read-only.
func (h *catalogController) handlePage(c *gin.Context) {
	renderer := render.NewHTMLRenderer()
	engine := catalog.NewEngine(renderer, h.deps.Log)

	if h.snapshot == nil {
		engine.Fail(h.deps.LoadErr)
	} else {
		engine.AttachSnapshot(h.snapshot)
		f := filterFromQuery(c)
		if f.Tag != types.FilterAll {
			engine.SetTag(f.Tag)
		} else if f.Status != types.FilterAll {
			engine.SetStatus(f.Status)
		}
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := render.WriteCatalogPage(c.Writer, renderer, engine.Statuses(), engine.State()); err != nil {
		h.deps.Log.Error().Err(err).Msg("render catalog page")
	}
}

func (h *catalogController) handleRecords(c *gin.Context) {
	if h.snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": catalog.MessageLoadFailed})
		return
	}

	f := filterFromQuery(c)
	records := catalog.Select(h.snapshot.Catalog, f)
	c.JSON(http.StatusOK, types.CatalogDocument{
		Status:  f.Status,
		Tag:     f.Tag,
		Total:   len(records),
		Records: records,
	})
}

func (h *catalogController) handleTags(c *gin.Context) {
	if h.snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": catalog.MessageLoadFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tags":     h.snapshot.Tags,
		"count":    len(h.snapshot.Tags),
		"statuses": h.snapshot.Statuses,
	})
}
