package controllers_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abdouxone/KFP/common/logger"
	"github.com/Abdouxone/KFP/controllers"
	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/services"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// ---- in-memory user repository ----

type memoryUserRepo struct {
	users map[string]*models.User
}

func (m *memoryUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) UpsertByEmail(_ context.Context, user *models.User) (*models.User, error) {
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ---- helpers ----

var webhookSecret = []byte("whsec_test")

func setupWebhookRouter(repo *memoryUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewWebhookController(services.NewUserService(repo), webhookSecret)
	r.POST("/webhooks/identity", c.HandleIdentityWebhook)
	return r
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, webhookSecret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(r *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(controllers.SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ---- tests ----

func TestHandleIdentityWebhook_CreatesUser(t *testing.T) {
	repo := &memoryUserRepo{users: make(map[string]*models.User)}
	r := setupWebhookRouter(repo)

	body := []byte(`{"type":"user.created","data":{"id":"usr_1","first_name":"Jane","last_name":"Doe","email":"jane@example.com","image_url":"https://img.example.com/1.png"}}`)
	w := postWebhook(r, body, sign(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, repo.users["usr_1"])
	assert.Equal(t, "Jane Doe", repo.users["usr_1"].Name)
	assert.Equal(t, models.RoleUser, repo.users["usr_1"].Role)
}

func TestHandleIdentityWebhook_RejectsBadSignature(t *testing.T) {
	repo := &memoryUserRepo{users: make(map[string]*models.User)}
	r := setupWebhookRouter(repo)

	body := []byte(`{"type":"user.created","data":{"id":"usr_1","email":"jane@example.com"}}`)
	w := postWebhook(r, body, "deadbeef")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.users)
}

func TestHandleIdentityWebhook_RejectsMissingSignature(t *testing.T) {
	repo := &memoryUserRepo{users: make(map[string]*models.User)}
	r := setupWebhookRouter(repo)

	body := []byte(`{"type":"user.created","data":{"id":"usr_1","email":"jane@example.com"}}`)
	w := postWebhook(r, body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleIdentityWebhook_DeletesUser(t *testing.T) {
	repo := &memoryUserRepo{users: map[string]*models.User{
		"usr_1": {ID: "usr_1", Email: "jane@example.com"},
	}}
	r := setupWebhookRouter(repo)

	body := []byte(`{"type":"user.deleted","data":{"id":"usr_1"}}`)
	w := postWebhook(r, body, sign(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.users)
}

func TestHandleIdentityWebhook_MalformedPayload(t *testing.T) {
	repo := &memoryUserRepo{users: make(map[string]*models.User)}
	r := setupWebhookRouter(repo)

	body := []byte(`{not json`)
	w := postWebhook(r, body, sign(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
