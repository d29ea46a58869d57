package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"coursehub/internal/models"
	"coursehub/internal/repositories"
	"coursehub/internal/services"
)

// Минимальные in-memory репозитории для прогона регистрации через HTTP.

type memUsers struct {
	byName map[string]*models.User
	nextID int
}

func (r *memUsers) Create(u *models.User) error {
	if _, ok := r.byName[u.Username]; ok {
		return repositories.ErrDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	u.DateJoined = time.Now()
	r.byName[u.Username] = u
	return nil
}

func (r *memUsers) GetByID(id int) (*models.User, error) {
	for _, u := range r.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memUsers) GetByUsername(username string) (*models.User, error) {
	u, ok := r.byName[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (r *memUsers) Update(*models.User) error                   { return nil }
func (r *memUsers) UpdatePassword(int, string) error            { return nil }
func (r *memUsers) PassportTaken(string, int) (bool, error)     { return false, nil }
func (r *memUsers) UpdateRefresh(int, string, time.Time) error  { return nil }
func (r *memUsers) RevokeRefresh(string) error                  { return nil }
func (r *memUsers) SetTelegramChat(int, int64) error            { return nil }
func (r *memUsers) GetByRefreshToken(string) (*models.User, error) {
	return nil, sql.ErrNoRows
}
func (r *memUsers) RotateRefresh(string, string, time.Time) (*models.User, error) {
	return nil, sql.ErrNoRows
}

type memVerifications struct {
	byPhone map[string]*models.PhoneVerification
	nextID  int64
}

func (r *memVerifications) Upsert(phone, password, code string, createdAt time.Time) (*models.PhoneVerification, error) {
	v, ok := r.byPhone[phone]
	if !ok {
		r.nextID++
		v = &models.PhoneVerification{ID: r.nextID, Phone: phone}
		r.byPhone[phone] = v
	}
	v.Password = password
	v.Code = code
	v.CreatedAt = createdAt
	v.IsVerified = false
	return v, nil
}

func (r *memVerifications) GetByPhone(phone string) (*models.PhoneVerification, error) {
	v, ok := r.byPhone[phone]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return v, nil
}

func (r *memVerifications) GetByPhoneAndCode(phone, code string) (*models.PhoneVerification, error) {
	v, ok := r.byPhone[phone]
	if !ok || v.Code != code {
		return nil, sql.ErrNoRows
	}
	return v, nil
}

func (r *memVerifications) UpdateCode(id int64, code string, createdAt time.Time) error {
	for _, v := range r.byPhone {
		if v.ID == id {
			v.Code = code
			v.CreatedAt = createdAt
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *memVerifications) MarkVerified(id int64) error {
	for _, v := range r.byPhone {
		if v.ID == id {
			v.IsVerified = true
			return nil
		}
	}
	return sql.ErrNoRows
}

func newVerificationRouter() (*gin.Engine, *memUsers) {
	gin.SetMode(gin.TestMode)
	users := &memUsers{byName: map[string]*models.User{}, nextID: 1}
	verifications := &memVerifications{byPhone: map[string]*models.PhoneVerification{}}

	svc := services.NewVerificationService(
		verifications, users, services.NewAuthService(),
		services.NewCodeGenerator(), services.NopNotifier{},
	)
	h := NewVerificationHandler(svc)

	r := gin.New()
	r.POST("/auth/register-phone", h.Register)
	r.POST("/auth/verify-code", h.Verify)
	r.POST("/phone-verification/verify_phone", h.GetCode)
	return r, users
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterVerifyFlow(t *testing.T) {
	r, users := newVerificationRouter()

	w := postJSON(t, r, "/auth/register-phone",
		`{"phone_number": "+77001234567", "password": "password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("register: status = %d, body %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("register: bad body %s", w.Body.String())
	}
	code := resp["code"]
	if len(code) != 6 {
		t.Fatalf("register: code = %q, want 6 digits", code)
	}

	// неверный код не создаёт пользователя
	w = postJSON(t, r, "/auth/verify-code",
		`{"phone_number": "+77001234567", "verification_code": "000000"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("wrong code: status = %d, body %s", w.Code, w.Body.String())
	}
	if len(users.byName) != 0 {
		t.Fatal("wrong code: user created")
	}

	w = postJSON(t, r, "/auth/verify-code",
		`{"phone_number": "+77001234567", "verification_code": "`+code+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("verify: status = %d, body %s", w.Code, w.Body.String())
	}
	if _, ok := users.byName["77001234567"]; !ok {
		t.Fatal("verify: user not created under normalized phone")
	}

	// повторная регистрация подтверждённого номера
	w = postJSON(t, r, "/auth/register-phone",
		`{"phone_number": "+77001234567", "password": "password123"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("re-register: status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestGetCodeUnknownPhone(t *testing.T) {
	r, _ := newVerificationRouter()
	w := postJSON(t, r, "/phone-verification/verify_phone",
		`{"phone_number": "+70000000000"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r, _ := newVerificationRouter()
	w := postJSON(t, r, "/auth/register-phone",
		`{"phone_number": "+77001234567", "password": "short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}
