package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, method jwt.SigningMethod, key []byte, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/user/me", func(c *gin.Context) {
		id := c.GetInt("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	staff := r.Group("/", StaffOnly())
	staff.POST("/courses", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	SetJWTKey("test-secret")
	r := testRouter()

	valid := signToken(t, jwt.SigningMethodHS256, JWTKey, time.Now().Add(15*time.Minute))
	expired := signToken(t, jwt.SigningMethodHS256, JWTKey, time.Now().Add(-time.Hour))
	wrongKey := signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), time.Now().Add(15*time.Minute))

	cases := []struct {
		name       string
		method     string
		path       string
		authHeader string
		wantStatus int
	}{
		{"public path without token", http.MethodPost, "/auth/login", "", http.StatusOK},
		{"protected without token", http.MethodGet, "/user/me", "", http.StatusUnauthorized},
		{"malformed header", http.MethodGet, "/user/me", "Token " + valid, http.StatusUnauthorized},
		{"valid token", http.MethodGet, "/user/me", "Bearer " + valid, http.StatusOK},
		{"expired token", http.MethodGet, "/user/me", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong signing key", http.MethodGet, "/user/me", "Bearer " + wrongKey, http.StatusUnauthorized},
		{"staff route as regular user", http.MethodPost, "/courses", "Bearer " + valid, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestStaffOnlyAllowsStaff(t *testing.T) {
	SetJWTKey("test-secret")
	r := testRouter()

	claims := &Claims{
		UserID:  1,
		IsStaff: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTKey)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/courses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
}
