package handlers

import (
	"errors"
	"net/http"

	"serveease/services/user"
	"serveease/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the static-credential demo authentication.
type AuthHandler struct {
	Svc *user.Service
}

func NewAuthHandler(svc *user.Service) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload.", err.Error())
		return
	}
	u, err := h.Svc.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password.", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Unable to sign in.", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
		Name  string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload.", err.Error())
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), input.Email, input.Name)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unable to register.", err.Error())
		return
	}
	c.JSON(http.StatusCreated, u)
}

// CurrentUser handles GET /api/auth/me.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	u, ok := h.Svc.CurrentUser(c.Request.Context())
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not signed in.", "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Unable to sign out.", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
