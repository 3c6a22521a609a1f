package handlers

import (
	"net/http"

	"serveease/services/prefs"
	"serveease/utils"

	"github.com/gin-gonic/gin"
)

// PrefsHandler exposes the persisted theme preference.
type PrefsHandler struct {
	Svc *prefs.Service
}

func NewPrefsHandler(svc *prefs.Service) *PrefsHandler {
	return &PrefsHandler{Svc: svc}
}

// GetTheme handles GET /api/theme.
func (h *PrefsHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.Svc.Theme(c.Request.Context())})
}

// SetTheme handles PUT /api/theme.
func (h *PrefsHandler) SetTheme(c *gin.Context) {
	var input struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid theme payload.", err.Error())
		return
	}
	if err := h.Svc.SetTheme(c.Request.Context(), input.Theme); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Unable to save theme.", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": h.Svc.Theme(c.Request.Context())})
}

// ToggleTheme handles POST /api/theme/toggle.
func (h *PrefsHandler) ToggleTheme(c *gin.Context) {
	theme, err := h.Svc.ToggleTheme(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Unable to toggle theme.", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}
