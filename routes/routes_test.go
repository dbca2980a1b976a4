package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Joeseb100/realprops/storage"
	"github.com/Joeseb100/realprops/utils"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// buildTestApp wires the real handlers against an in-memory database and a
// temp-dir blob store, with the same routing as main.go.
func buildTestApp(t *testing.T) (*iris.Application, *gorm.DB) {
	t.Helper()
	os.Setenv("ADMIN_TOKEN_SECRET", "testsecret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	storage.Migrate(db)

	admins := storage.NewAdminRepository(db)
	properties := storage.NewPropertyRepository(db)
	reviews := storage.NewReviewRepository(db)
	importer := storage.NewImporter(properties)
	audit := storage.NewAuditRecorder(db)
	blob := storage.NewLocalStore(t.TempDir(), "/uploads")

	authHandler := NewAuthHandler(admins)
	propertyHandler := NewPropertyHandler(properties, audit)
	bulkHandler := NewBulkImportHandler(importer, audit)
	reviewHandler := NewReviewHandler(reviews, audit)
	uploadHandler := NewUploadHandler(blob)

	app := iris.New()
	app.Validator = validator.New()

	auth := app.Party("/api/auth")
	{
		auth.Post("/", authHandler.Login)
		auth.Post("/logout", utils.AdminMiddleware, authHandler.Logout)
	}

	property := app.Party("/api/properties")
	{
		property.Get("/", propertyHandler.List)
		property.Get("/{id:uint}", propertyHandler.Get)
		property.Post("/", utils.AdminMiddleware, propertyHandler.Create)
		property.Put("/{id:uint}", utils.AdminMiddleware, propertyHandler.Update)
		property.Delete("/{id:uint}", utils.AdminMiddleware, propertyHandler.Delete)
		property.Post("/bulk", utils.AdminMiddleware, bulkHandler.Import)
	}

	review := app.Party("/api/reviews")
	{
		review.Get("/", reviewHandler.List)
		review.Post("/", reviewHandler.Submit)
		review.Patch("/", utils.AdminMiddleware, reviewHandler.Moderate)
	}

	app.Post("/api/upload", utils.AdminMiddleware, uploadHandler.Upload)

	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app, db
}

// adminCookie returns a session cookie signed with the test secret.
func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := utils.CreateSessionToken(1, "admin@test.com")
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return &http.Cookie{Name: utils.SessionCookieName, Value: token}
}

func doJSON(t *testing.T, app *iris.Application, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
}
