package handlers

import (
	"net/http"

	"serveease/services/favorites"
	"serveease/utils"

	"github.com/gin-gonic/gin"
)

// FavoritesHandler exposes the persisted favorite-listing set.
type FavoritesHandler struct {
	Svc *favorites.Service
}

func NewFavoritesHandler(svc *favorites.Service) *FavoritesHandler {
	return &FavoritesHandler{Svc: svc}
}

// ListFavorites handles GET /api/favorites.
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.Svc.List(c.Request.Context())})
}

// ToggleFavorite handles POST /api/favorites/toggle.
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	var input struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid favorite payload.", err.Error())
		return
	}
	updated, err := h.Svc.Toggle(c.Request.Context(), input.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Unable to update favorites.", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// ClearFavorites handles DELETE /api/favorites.
func (h *FavoritesHandler) ClearFavorites(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Unable to clear favorites.", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
