package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Joeseb100/realprops/routes"
	"github.com/Joeseb100/realprops/storage"
	"github.com/Joeseb100/realprops/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
)

func main() {
	godotenv.Load()
	db := storage.InitializeDB()

	admins := storage.NewAdminRepository(db)
	properties := storage.NewPropertyRepository(db)
	reviews := storage.NewReviewRepository(db)
	importer := storage.NewImporter(properties)
	audit := storage.NewAuditRecorder(db)

	blob := selectBlobStore()

	authHandler := routes.NewAuthHandler(admins)
	propertyHandler := routes.NewPropertyHandler(properties, audit)
	bulkHandler := routes.NewBulkImportHandler(importer, audit)
	reviewHandler := routes.NewReviewHandler(reviews, audit)
	uploadHandler := routes.NewUploadHandler(blob)

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the admin dashboard
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

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

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// selectBlobStore picks Cloudinary when its credentials are configured and
// falls back to local disk otherwise.
func selectBlobStore() storage.BlobStore {
	if cloud := storage.NewCloudinaryStoreFromEnv(); cloud.Configured() {
		log.Println("Blob store: cloudinary")
		return cloud
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	baseURL := os.Getenv("PUBLIC_UPLOAD_URL")
	if baseURL == "" {
		baseURL = "/uploads"
	}
	log.Printf("Blob store: local disk at %s", dir)
	return storage.NewLocalStore(dir, baseURL)
}
