package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/recipe-cost-service/internal/apperr"
	"github.com/guttosm/recipe-cost-service/internal/domain/dto"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
	"github.com/guttosm/recipe-cost-service/internal/middleware"
	"github.com/guttosm/recipe-cost-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login user
// @Description  Authenticates a user and returns a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.LoginResponse "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if ls := loggingServiceFrom(c); ls != nil {
			middleware.AuditLogError(ls, c, "login_failed", "Failed login attempt", err, map[string]interface{}{
				"email": req.Email,
			})
		}
		// Credential failures answer 401, not the validation kind's 400.
		if apperr.MessageKeyOf(err) == i18n.ErrKeyInvalidCredentials {
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
			return
		}
		builder.DomainError(err)
		return
	}

	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)
	auditLog(c, "login", "User logged in successfully", map[string]interface{}{
		"email": user.Email,
	})

	builder.SuccessOK(dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.authService.TokenTTL().Seconds()),
		User: dto.UserResponse{
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register new user
// @Description  Creates a new user account and returns a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration information"
// @Success      201 {object} dto.LoginResponse "Successful registration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - user already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	token, user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if ls := loggingServiceFrom(c); ls != nil {
			middleware.AuditLogError(ls, c, "register_failed", "Failed registration attempt", err, map[string]interface{}{
				"email": req.Email,
			})
		}
		builder.DomainError(err)
		return
	}

	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)
	auditLog(c, "register", "New user registered successfully", map[string]interface{}{
		"email": user.Email,
		"name":  user.Name,
	})

	builder.SuccessCreated(dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.authService.TokenTTL().Seconds()),
		User: dto.UserResponse{
			Email: user.Email,
			Name:  user.Name,
		},
	})
}
