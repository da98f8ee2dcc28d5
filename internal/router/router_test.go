package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/config"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/infra"
)

func init() { gin.SetMode(gin.TestMode) }

func testConfig() *config.Config {
	return &config.Config{
		Env:                    "test",
		JWTSecret:              "router-test-secret",
		JWTExpirationHours:     48,
		BcryptCost:             bcrypt.MinCost,
		RateLimitRequests:      1000,
		RateLimitWindowSeconds: 60,
		UserCacheTTLMinutes:    5,
		CORSAllowedOrigins:     "*",
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, infra.Migrate(db))
	return db
}

func newTestServer(t *testing.T, cfg *config.Config) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(cfg, newTestDB(t), rdb), mr
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Token      string          `json:"token"`
	Data       json.RawMessage `json:"data"`
}

func call(t *testing.T, r http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

var ana = map[string]interface{}{
	"fullName": "Ana Silva",
	"email":    "ana@x.com",
	"password": "abc12345",
	"code":     "C001",
	"nuit":     "123456789",
	"msisdn":   "821234567",
	"address":  "Rua 1",
}

func TestE2E_CreateThenLogin(t *testing.T) {
	r, _ := newTestServer(t, testConfig())

	w, env := call(t, r, http.MethodPost, "/api/v1/users/create", "", ana)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, string(env.Data), `"password"`)

	w, env = call(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "ana@x.com", "password": "abc12345",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, env.Token)

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "ana@x.com", profile["email"])
	assert.NotContains(t, profile, "password")
	assert.Equal(t, float64(0), profile["loyaltyPoints"])
	assert.Equal(t, true, profile["isActive"])
}

func TestE2E_DuplicateRegistrationIsConflict(t *testing.T) {
	r, _ := newTestServer(t, testConfig())
	w, _ := call(t, r, http.MethodPost, "/api/v1/users/create", "", ana)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := call(t, r, http.MethodPost, "/api/v1/users/create", "", ana)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Usuário com este email já existe", env.Message)
}

func TestE2E_ValidationErrorsListFields(t *testing.T) {
	r, _ := newTestServer(t, testConfig())

	w, env := call(t, r, http.MethodPost, "/api/v1/users/create", "", map[string]interface{}{
		"fullName": "Ana Silva",
		"email":    "nope",
		"password": "short",
		"code":     "C001",
		"nuit":     "123",
		"msisdn":   "721234567",
		"address":  "Rua 1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	got := map[string]bool{}
	for _, f := range fields {
		got[f["field"]] = true
	}
	for _, want := range []string{"email", "password", "nuit", "msisdn"} {
		assert.True(t, got[want], want)
	}

	w, _ = call(t, r, http.MethodPost, "/api/v1/auth/login", "", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestE2E_LoginUnknownEmailIsUniform401(t *testing.T) {
	r, _ := newTestServer(t, testConfig())
	w, env := call(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "ghost@x.com", "password": "abc12345",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Credenciais inválidas, verifica suas informações!", env.Message)
}

func TestE2E_ProtectedRoutes(t *testing.T) {
	r, mr := newTestServer(t, testConfig())

	w, _ := call(t, r, http.MethodGet, "/api/v1/users/all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = call(t, r, http.MethodGet, "/api/v1/users/all", "bad.token.value", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	_, created := call(t, r, http.MethodPost, "/api/v1/users/create", "", ana)
	var profile struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(created.Data, &profile))
	_, login := call(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "ana@x.com", "password": "abc12345",
	})
	token := login.Token

	w, env := call(t, r, http.MethodGet, "/api/v1/user/online", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), profile.ID)
	assert.True(t, mr.Exists("user:"+profile.ID))

	w, _ = call(t, r, http.MethodGet, "/api/v1/users/all", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, r, http.MethodGet, "/api/v1/users/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = call(t, r, http.MethodGet, "/api/v1/users/00000000-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = call(t, r, http.MethodPut, "/api/v1/users/"+profile.ID, token, map[string]string{"occupation": "Contabilista"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), "Contabilista")
	assert.False(t, mr.Exists("user:"+profile.ID))

	w, _ = call(t, r, http.MethodPut, "/api/v1/users/"+profile.ID+"/password", token, map[string]string{
		"currentPassword": "wrong123", "newPassword": "nova12345",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = call(t, r, http.MethodPut, "/api/v1/users/"+profile.ID+"/password", token, map[string]string{
		"currentPassword": "abc12345", "newPassword": "nova12345",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, r, http.MethodDelete, "/api/v1/users/"+profile.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = call(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "ana@x.com", "password": "nova12345",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = call(t, r, http.MethodPut, "/api/v1/users/"+profile.ID+"/activate", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = call(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "ana@x.com", "password": "nova12345",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestE2E_UpdateEmailConflict(t *testing.T) {
	r, _ := newTestServer(t, testConfig())
	call(t, r, http.MethodPost, "/api/v1/users/create", "", ana)
	_, bruno := call(t, r, http.MethodPost, "/api/v1/users/create", "", map[string]interface{}{
		"fullName": "Bruno Costa",
		"email":    "bruno@x.com",
		"password": "xyz98765",
		"code":     "C002",
		"nuit":     "987654321",
		"msisdn":   "841111111",
		"address":  "Rua 2",
	})
	var profile struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(bruno.Data, &profile))
	_, login := call(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "bruno@x.com", "password": "xyz98765",
	})

	w, env := call(t, r, http.MethodPut, "/api/v1/users/"+profile.ID+"/email", login.Token, map[string]string{"email": "ana@x.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Este email já está em uso por outro usuário", env.Message)
}

func TestE2E_Enums(t *testing.T) {
	r, _ := newTestServer(t, testConfig())

	w, env := call(t, r, http.MethodGet, "/api/v1/enums/genders", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var genders []struct {
		Code  string `json:"code"`
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &genders))
	require.Len(t, genders, 3)
	assert.Equal(t, "M", genders[0].Code)
	assert.Equal(t, "Masculino", genders[0].Value)
	assert.Equal(t, "F", genders[1].Code)
	assert.Equal(t, "Feminino", genders[1].Value)
	assert.Equal(t, "Other", genders[2].Code)
	assert.Equal(t, "Outro", genders[2].Value)

	w, env = call(t, r, http.MethodGet, "/api/v1/enums/districts?province=Atlantis", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", string(env.Data))

	w, _ = call(t, r, http.MethodGet, "/api/v1/enums/districts", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, path := range []string{"provinces", "marital-statuses", "roles", "nationalities", "payment-methods"} {
		w, _ = call(t, r, http.MethodGet, "/api/v1/enums/"+path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestE2E_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRequests = 2
	r, _ := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		w, _ := call(t, r, http.MethodGet, "/api/v1/enums/roles", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	w, _ := call(t, r, http.MethodGet, "/api/v1/enums/roles", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w, _ = call(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "root health is outside the limited group")
}

func TestHealth_WithoutRedis(t *testing.T) {
	r := New(testConfig(), newTestDB(t), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":"connected","redis":"disabled"}`, w.Body.String())
}
