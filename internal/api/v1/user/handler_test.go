package user_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lukasringel/economy-service/internal/api/v1/user"
	"github.com/lukasringel/economy-service/internal/models"
	"github.com/lukasringel/economy-service/internal/services"
	"github.com/lukasringel/economy-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
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
	users := services.NewUserCache(st, registry, store.SystemClock{}, 5*time.Minute)

	router := gin.New()
	group := router.Group("/")
	user.RegisterRoutes(group, user.NewHandler(users))
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(router, "/user/create", `{"identifiers":["discord","123","minecraft","abc"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Suspended)
	assert.Empty(t, resp.Data.Accounts)
	require.Len(t, resp.Data.ExternalIdentifiers, 2)
	assert.Equal(t, "discord", resp.Data.ExternalIdentifiers[0].Key)
	assert.Equal(t, "123", resp.Data.ExternalIdentifiers[0].Value)

	// Odd-length identifier list is rejected before anything is written.
	w = postJSON(router, "/user/create", `{"identifiers":["discord"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserLookups(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(router, "/user/create", `{"identifiers":["discord","123"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/user/by/id?id=%d", created.Data.ID), nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var byID struct {
		Data models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &byID))
	assert.Equal(t, created.Data.ID, byID.Data.ID)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/user/by/identifier?key=discord&value=123", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/user/by/id?id=9999", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/user/by/identifier?key=discord", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
