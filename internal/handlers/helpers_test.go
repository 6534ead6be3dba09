package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"Bloglist/internal/auth"
	"Bloglist/internal/config"
	"Bloglist/internal/handlers"
	"Bloglist/internal/model"
	"Bloglist/internal/repo"
	"Bloglist/internal/service"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

// newTestRouter поднимает полный роутер поверх in-memory SQLite.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Blog{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	cfg := &config.Config{AuthSecret: testSecret, TokenTTL: time.Hour}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(repo.NewUserRepository(db))
	blogSvc := service.NewBlogService(repo.NewBlogRepository(db))

	h := handlers.NewHandler(userSvc, blogSvc, logger, cfg)
	return h.Router
}

// addBearer подписывает токен для userID и кладёт его в заголовок запроса.
func addBearer(t *testing.T, req *http.Request, username, userID string) {
	t.Helper()
	token, err := auth.IssueToken(username, userID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// doJSON выполняет запрос с JSON-телом через роутер.
func doJSON(t *testing.T, router http.Handler, method, target, body string, authAs ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if len(authAs) == 2 {
		addBearer(t, req, authAs[0], authAs[1])
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
