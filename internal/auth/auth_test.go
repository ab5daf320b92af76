package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "b8a3c2267dc85f855dea9b46b452bf20"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func accessClaims(userID, role int, expiry time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
		"iat":     time.Now().Unix(),
		"type":    "access",
	}
}

func TestTokenValidator_ValidateAccessToken(t *testing.T) {
	tv := NewTokenValidator(testSecret)

	tests := []struct {
		name           string
		token          func(t *testing.T) string
		expectedError  bool
		errorContains  string
		expectedUserID int
		expectedRole   int
	}{
		{
			name:           "valid admin token",
			token:          func(t *testing.T) string { return signToken(t, testSecret, accessClaims(7, 3, time.Hour)) },
			expectedUserID: 7,
			expectedRole:   3,
		},
		{
			name:          "expired token",
			token:         func(t *testing.T) string { return signToken(t, testSecret, accessClaims(7, 3, -time.Hour)) },
			expectedError: true,
			errorContains: "failed to parse token",
		},
		{
			name:          "wrong secret",
			token:         func(t *testing.T) string { return signToken(t, "other-secret", accessClaims(7, 3, time.Hour)) },
			expectedError: true,
			errorContains: "failed to parse token",
		},
		{
			name: "refresh token",
			token: func(t *testing.T) string {
				claims := accessClaims(7, 3, time.Hour)
				claims["type"] = "refresh"
				return signToken(t, testSecret, claims)
			},
			expectedError: true,
			errorContains: "not an access token",
		},
		{
			name: "missing role",
			token: func(t *testing.T) string {
				claims := accessClaims(7, 3, time.Hour)
				delete(claims, "role")
				return signToken(t, testSecret, claims)
			},
			expectedError: true,
			errorContains: "role not found",
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				claims := accessClaims(7, 3, time.Hour)
				delete(claims, "exp")
				return signToken(t, testSecret, claims)
			},
			expectedError: true,
			errorContains: "failed to parse token",
		},
		{
			name:          "garbage",
			token:         func(t *testing.T) string { return "not.a.token" },
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, role, err := tv.ValidateAccessToken(tt.token(t))

			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedUserID, userID)
			assert.Equal(t, tt.expectedRole, role)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tv := NewTokenValidator(testSecret)

	tests := []struct {
		name           string
		setupRequest   func(t *testing.T, r *http.Request)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "admin via header",
			setupRequest: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, accessClaims(7, 3, time.Hour)))
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "admin via cookie",
			setupRequest: func(t *testing.T, r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, testSecret, accessClaims(7, 3, time.Hour))})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no token",
			setupRequest:   func(t *testing.T, r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "authentication required",
		},
		{
			name: "invalid token",
			setupRequest: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer nope")
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "invalid or expired token",
		},
		{
			name: "student role",
			setupRequest: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, accessClaims(9, 1, time.Hour)))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "insufficient permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var userID int
			handler := RoleMiddleware(tv, 3)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, _ = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/order/lessons/reorder", strings.NewReader("{}"))
			tt.setupRequest(t, req)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, 7, userID)
			} else {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
