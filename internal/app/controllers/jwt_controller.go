package controllers

import (
	"crypto/subtle"

	"warga-http-service/internal/domain/services"
	"warga-http-service/internal/domain/services/container"
	"warga-http-service/internal/error/code"
	"warga-http-service/internal/error/response"
	"warga-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController defines the authentication controller interface
type InterfaceJWTController interface {
	Login()
	VerifyWargaPassword()
}

// JWTController handles authentication requests.
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new authentication controller.
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"operator"`
	Password string `json:"password" binding:"required" example:"rahasia123"`
}

// WargaAuthRequest is the shared-password gate payload.
type WargaAuthRequest struct {
	Password string `json:"password" binding:"required" example:"wargadayeuh"`
}

// wargaGateAllows decides whether an attempt passes the shared password gate.
// An unset password leaves the gate open, reported through the fallback flag.
func wargaGateAllows(configured, attempt string) (allowed bool, fallback bool) {
	if configured == "" {
		return true, true
	}
	return subtle.ConstantTimeCompare([]byte(attempt), []byte(configured)) == 1, false
}

// ErrorResponse is the failure envelope shown in the API docs.
type ErrorResponse struct {
	Code    int         `json:"code" example:"100004"`
	Message string      `json:"message" example:"token tidak valid"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc returns a gin handler dispatching to the named method.
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "verifyWargaPassword":
			controller.VerifyWargaPassword()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "metode tidak dikenal", nil)
		}
	}
}

// Login authenticates an account and issues a token
// @Summary      Login
// @Description  Verify credentials and return a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  map[string]interface{}  "Token and account info"
// @Failure      400  {object}  ErrorResponse  "Bad request"
// @Failure      401  {object}  ErrorResponse  "Invalid credentials"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Username, req.Password)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUserPasswordIncorrect, "username atau password salah", nil)
		return
	}

	response.Success(c.Ctx, result)
}

// VerifyWargaPassword checks the shared community password
// @Summary      Verify community password
// @Description  Gate for the public-facing pages, compares against the configured shared password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body WargaAuthRequest true "Shared password"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse  "Wrong password"
// @Router       /warga-auth/verify [post]
func (c *JWTController) VerifyWargaPassword() {
	var req WargaAuthRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}

	cfg := c.Container.GetService("config").(*config.Config)
	allowed, fallback := wargaGateAllows(cfg.WargaPassword, req.Password)
	if !allowed {
		response.FailWithMessage(c.Ctx, code.ErrUserPasswordIncorrect, "password warga salah", nil)
		return
	}

	if fallback {
		response.Success(c.Ctx, gin.H{
			"verified": true,
			"catatan":  "password warga belum dikonfigurasi, fallback diizinkan",
		})
		return
	}

	response.Success(c.Ctx, gin.H{"verified": true})
}
