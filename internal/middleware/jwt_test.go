package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/recipe-cost-service/internal/domain/dto"
	"github.com/guttosm/recipe-cost-service/internal/mocks"
)

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectUserInfo bool
	}{
		{
			name:       "valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(mockAuth *mocks.MockAuthService) {
				claims := &dto.Claims{
					UserID: "usr-1",
					Email:  "test@example.com",
					Name:   "Test User",
				}
				mockAuth.On("ValidateToken", "valid-token").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
			expectUserInfo: true,
		},
		{
			name:           "missing header",
			authHeader:     "",
			setupMocks:     func(mockAuth *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer token",
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMocks:     func(mockAuth *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty bearer token",
			authHeader:     "Bearer ",
			setupMocks:     func(mockAuth *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			authHeader: "Bearer expired-token",
			setupMocks: func(mockAuth *mocks.MockAuthService) {
				mockAuth.On("ValidateToken", "expired-token").
					Return(nil, errors.New("token is expired"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := new(mocks.MockAuthService)
			tt.setupMocks(mockAuth)

			var gotUserID, gotEmail string
			router := gin.New()
			router.Use(RequestID())
			router.Use(JWTAuth(mockAuth))
			router.GET("/protected", func(c *gin.Context) {
				gotUserID = c.GetString("user_id")
				gotEmail = c.GetString("user_email")
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectUserInfo {
				assert.Equal(t, "usr-1", gotUserID)
				assert.Equal(t, "test@example.com", gotEmail)
			}
			mockAuth.AssertExpectations(t)
		})
	}
}

// TestJWTAuth_LocalizedError tests that the 401 message follows the
// Accept-Language header.
func TestJWTAuth_LocalizedError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockAuth := new(mocks.MockAuthService)
	router := gin.New()
	router.Use(RequestID())
	router.Use(JWTAuth(mockAuth))
	router.GET("/protected", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "obrigat")
}
