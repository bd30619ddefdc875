package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/peoplemanager/backend/internal/application/people"
	"github.com/peoplemanager/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *people.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *people.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), people.LoginInput{
		CPF:      req.CPF,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{
		Token: TokenResponse{
			AccessToken: result.Token,
			ExpiresAt:   result.ExpiresAt,
			TokenType:   result.TokenType,
		},
		Person: toPersonResponse(result.Person),
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	err := h.authService.Logout(c.Request.Context(), people.LogoutInput{
		TokenJTI:  claims.ID,
		ExpiresAt: claims.GetExpiresAtTime(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LogoutResponse{
		Message: "Logged out successfully",
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	personID, err := getPersonID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.authService.GetCurrentPerson(c.Request.Context(), people.CurrentPersonInput{
		PersonID: personID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CurrentPersonResponse{
		Person: toPersonResponse(*result),
	})
}
