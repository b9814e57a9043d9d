package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"nexues_backend/internal/app"
	"nexues_backend/internal/config"
	"nexues_backend/internal/logger"
)

var initOnce sync.Once

// TestServer - полный HTTP-стек поверх изолированной in-memory базы.
// Каждый тест получает собственный сервер и собственную базу,
// поэтому тесты можно запускать параллельно без очистки таблиц.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

// NewTestServer поднимает приложение на sqlite in-memory.
// cache=shared обязателен: без него каждый коннект пула
// получил бы собственную пустую базу.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	initOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		logger.Init("test")
	})

	dsn := fmt.Sprintf("file:nexues_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД (%s): %v", dsn, err)
	}

	// In-memory база живет, пока открыт хотя бы один коннект
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Не удалось получить *sql.DB из GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := app.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}

	cfg := testConfig(t)
	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server: server,
		DB:     db,
		Config: cfg,
	}
	t.Cleanup(ts.Close)

	return ts
}

// testConfig собирает конфиг, не зависящий от файлов и окружения
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Server.Env = "test"
	cfg.JWT.AccessSecret = "test-access-secret-1234567890"
	cfg.JWT.RefreshSecret = "test-refresh-secret-1234567890"
	cfg.JWT.AccessTTLMinutes = 15
	cfg.JWT.RefreshTTLDays = 7
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Upload.MaxResumeSize = 5 * 1024 * 1024
	cfg.Upload.MaxLogoSize = 2 * 1024 * 1024
	// Redis не настроен - rate limiting в тестах выключен
	cfg.Redis.Addr = ""
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// SendRequest выполняет JSON-запрос к тестовому серверу.
// Возвращает ответ и прочитанное тело строкой.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()
	return ts.sendRequest(t, method, path, token, nil, body)
}

// SendRequestWithCookie - то же самое, но с cookie (для refresh-флоу)
func (ts *TestServer) SendRequestWithCookie(t *testing.T, method, path, token string, cookie *http.Cookie, body interface{}) (*http.Response, string) {
	t.Helper()
	return ts.sendRequest(t, method, path, token, cookie, body)
}

func (ts *TestServer) sendRequest(t *testing.T, method, path, token string, cookie *http.Cookie, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBodyBytes)
}

// SendFile загружает файл multipart-запросом в поле "file"
func (ts *TestServer) SendFile(t *testing.T, path, token, fileName string, content []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("Ошибка создания multipart-поля: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Ошибка записи содержимого файла: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Ошибка закрытия multipart-райтера: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBodyBytes)
}

// ResponseCookie достает cookie по имени из Set-Cookie ответа
func ResponseCookie(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
