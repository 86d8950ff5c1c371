package handlers

import (
	"fitstream_backend/internal/middleware"
	"fitstream_backend/internal/services"
	"fitstream_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	jwtSecret   string
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		jwtSecret:   jwtSecret,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
	}

	protected := rg.Group("/auth")
	protected.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		protected.GET("/profile", h.GetProfile)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondCreated(c, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, response)
}

// ForgotPassword always answers with the same message so responses
// carry no signal about which emails are registered.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.ForgotPassword(db, req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, "If this email is registered, a reset link has been sent")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.ResetPassword(db, req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, "Password updated")
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.authService.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, profile)
}
