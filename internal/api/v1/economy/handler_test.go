package economy_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lukasringel/economy-service/internal/api/v1/economy"
	"github.com/lukasringel/economy-service/internal/models"
	"github.com/lukasringel/economy-service/internal/services"
	"github.com/lukasringel/economy-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *services.EconomyRegistry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	db.Migrator().DropTable(
		&models.Economy{},
		&models.AccountRecord{},
		&models.UserRecord{},
		&models.ExternalIdentifier{},
		&models.Transaction{},
	)
	st := store.NewGormStore(db)
	require.NoError(t, st.Migrate())

	registry := services.NewEconomyRegistry(st)

	router := gin.New()
	group := router.Group("/")
	economy.RegisterRoutes(group, economy.NewHandler(registry))
	return router, registry
}

func TestCreateEconomy(t *testing.T) {
	router, registry := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/economy/create",
		strings.NewReader(`{"name":"Gold","start_value":100}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status int            `json:"status"`
		Data   models.Economy `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "Gold", resp.Data.Name)
	assert.Equal(t, 100.0, resp.Data.StartValue)

	// Duplicate name conflicts after the registry sees the first one.
	require.NoError(t, registry.Refresh())
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/economy/create",
		strings.NewReader(`{"name":"gold","start_value":5}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateEconomyValidation(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/economy/create",
		strings.NewReader(`{"start_value":100}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEconomyLookups(t *testing.T) {
	router, registry := setupRouter(t)

	created, err := registry.Create("Gold", 100)
	require.NoError(t, err)
	require.NoError(t, registry.Refresh())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/economy/by/name?name=gold", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Economy `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.Data.ID)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/economy/by/id?id=999", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/economy/by/id?id=abc", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
