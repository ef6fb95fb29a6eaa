package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gestion-projets-core/internal/modules/auth/dto"
	"gestion-projets-core/internal/modules/auth/services"
	authmw "gestion-projets-core/internal/shared/middleware/auth"
	"gestion-projets-core/internal/shared/response"
)

type AuthController struct {
	authService *services.AuthService
	validator   *response.Validator
}

// NewAuthController crée une nouvelle instance du contrôleur d'authentification
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
		validator:   response.NewValidator(),
	}
}

// Login - POST /api/v1/auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := c.validator.Bind(ctx, &req); err != nil {
		response.Error(ctx, err)
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	ctx.Header(authmw.SessionHeader, result.SessionID)
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(authmw.SessionCookie, result.SessionID, 0, "/", "", ctx.Request.TLS != nil, true)
	response.OK(ctx, "Connexion réussie", result)
}

// Logout - POST /api/v1/auth/logout
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.authService.Logout(ctx.Request.Context(), authmw.SessionID(ctx)); err != nil {
		response.Error(ctx, err)
		return
	}
	ctx.SetCookie(authmw.SessionCookie, "", -1, "/", "", ctx.Request.TLS != nil, true)
	response.OK(ctx, "Déconnexion réussie", nil)
}

// Me - GET /api/v1/auth/me
func (c *AuthController) Me(ctx *gin.Context) {
	me, err := c.authService.Me(ctx.Request.Context(), authmw.SessionID(ctx))
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, "", me)
}
