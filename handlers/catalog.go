package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"serveease/models"
	"serveease/services/catalog"
	"serveease/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves catalog queries and single-listing lookups.
type CatalogHandler struct {
	Repo catalog.Repository
}

func NewCatalogHandler(repo catalog.Repository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// QueryServices handles GET /api/services with filter/sort/page params.
func (h *CatalogHandler) QueryServices(c *gin.Context) {
	spec := specFromQuery(c)
	result, err := h.Repo.Query(c.Request.Context(), spec)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Unable to load services.", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetServiceByID handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	listing, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found.", err.Error())
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Unable to load service.", err.Error())
		return
	}
	c.JSON(http.StatusOK, listing)
}

// GetRelatedServices handles GET /api/services/:id/related.
func (h *CatalogHandler) GetRelatedServices(c *gin.Context) {
	related, err := h.Repo.Related(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found.", err.Error())
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Unable to load related services.", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": related})
}

// GetFaqs handles GET /api/faqs.
func (h *CatalogHandler) GetFaqs(c *gin.Context) {
	faqs, err := h.Repo.Faqs(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Unable to load FAQs.", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": faqs})
}

func specFromQuery(c *gin.Context) models.QuerySpec {
	spec := models.DefaultQuerySpec()
	spec.Search = c.Query("search")
	if category := c.Query("category"); category != "" {
		spec.Category = category
	}
	if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil {
		spec.MinRating = v
	}
	if v, err := strconv.Atoi(c.Query("priceMin")); err == nil {
		spec.PriceMin = v
	}
	if v, err := strconv.Atoi(c.Query("priceMax")); err == nil && v > 0 {
		spec.PriceMax = v
	}
	if sort := c.Query("sort"); sort != "" {
		spec.Sort = sort
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		spec.Page = v
	}
	if v, err := strconv.Atoi(c.Query("pageSize")); err == nil && v > 0 {
		spec.PageSize = v
	}
	return spec
}
