package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"haulpro-backend/models"
	"haulpro-backend/storage"
	"haulpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, storage.Store) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Job{},
		&models.Quote{},
		&models.Lead{},
		&models.Invoice{},
		&models.Notification{},
		&models.Transaction{},
	))

	store := storage.NewGormStore(db)
	return SetupRouter(store), store
}

func tokenFor(t *testing.T, role string) string {
	token, err := utils.GenerateToken(uuid.NewString(), "tester", role)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	r, _ := setupRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/leads"},
		{http.MethodGet, "/api/invoices"},
		{http.MethodGet, "/api/notifications"},
		{http.MethodGet, "/api/customers"},
		{http.MethodGet, "/api/transactions"},
	}
	for _, p := range paths {
		w := doJSON(t, r, p.method, p.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestRoleGateMatrix(t *testing.T) {
	r, _ := setupRouter(t)

	admin := tokenFor(t, "admin")
	dispatcher := tokenFor(t, "dispatcher")
	field := tokenFor(t, "field")

	lead := map[string]interface{}{"name": "Roadside fridge", "value": "150.00"}

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   interface{}
		want   int
	}{
		{"field can read leads", http.MethodGet, "/api/leads", field, nil, http.StatusOK},
		{"field cannot create lead", http.MethodPost, "/api/leads", field, lead, http.StatusForbidden},
		{"dispatcher can create lead", http.MethodPost, "/api/leads", dispatcher, lead, http.StatusCreated},
		{"admin passes dispatcher routes", http.MethodPost, "/api/leads", admin, lead, http.StatusCreated},
		{"field can read invoices", http.MethodGet, "/api/invoices", field, nil, http.StatusOK},
		{"dispatcher cannot delete invoice", http.MethodDelete, "/api/invoices/1", dispatcher, nil, http.StatusForbidden},
		{"admin invoice delete hits not-found", http.MethodDelete, "/api/invoices/1", admin, nil, http.StatusNotFound},
		{"field cannot create notification", http.MethodPost, "/api/notifications", field,
			map[string]interface{}{"type": "info", "title": "t", "message": "m"}, http.StatusForbidden},
		{"dispatcher cannot clear notifications", http.MethodDelete, "/api/notifications", dispatcher, nil, http.StatusForbidden},
		{"admin can clear notifications", http.MethodDelete, "/api/notifications", admin, nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, tt.method, tt.path, tt.token, tt.body)
			require.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestErrorBodiesUseErrorKey(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/leads", "", nil)
	body := decodeBody(t, w)
	require.Contains(t, body, "error")

	w = doJSON(t, r, http.MethodPost, "/api/leads", tokenFor(t, "field"),
		map[string]interface{}{"name": "x"})
	body = decodeBody(t, w)
	require.Contains(t, body["error"], "admin, dispatcher")
}
