package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	config "github.com/psaswat/testyourmodels/configs"
	"github.com/psaswat/testyourmodels/internal/api/handlers"
	"github.com/psaswat/testyourmodels/internal/api/middleware"
	job "github.com/psaswat/testyourmodels/internal/jobs"
	"github.com/psaswat/testyourmodels/internal/repository"
	"github.com/psaswat/testyourmodels/internal/service"
	"github.com/psaswat/testyourmodels/internal/staticposts"
	"github.com/psaswat/testyourmodels/internal/store"
	"github.com/robfig/cron"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	client, db, err := store.Connect(context.Background(), cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(client)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    int(cfg.MaxUploadSizeMB+1) * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	snapshot := staticposts.NewSnapshot()
	adapter := store.NewMongoAdapter(db)

	postRepo := repository.NewPostRepository(adapter, snapshot)
	contactRepo := repository.NewContactRepository(adapter)

	authService := service.NewAuthService(*cfg)
	postService := service.NewPostService(postRepo)
	contactService := service.NewContactService(contactRepo)
	storageService := service.NewStorageService(*cfg)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)
	app.Get("/logout", auth.Logout)

	post := handlers.NewPostHandler(postService)
	contact := handlers.NewContactHandler(contactService)

	api := app.Group("/api")
	api.Get("/posts/featured", post.ListFeatured)
	api.Get("/posts/historical", post.ListHistorical)
	api.Get("/posts/display", post.DisplayPost)
	api.Get("/posts/:id", post.GetPost)
	api.Get("/search", post.SearchPosts)
	api.Post("/contact", contact.Submit)

	admin := api.Group("/admin")
	admin.Use(authMiddleware.AuthMiddleware())

	admin.Get("/user/info", auth.UserInfo)

	admin.Get("/posts", post.ListAll)
	admin.Post("/posts/create", post.CreatePost)
	admin.Post("/posts/update", post.UpdatePost)
	admin.Post("/posts/toggle", post.TogglePost)
	admin.Post("/posts/remove", post.RemovePost)

	admin.Get("/messages", contact.ListMessages)
	admin.Post("/messages/read", contact.MarkRead)
	admin.Get("/messages/unread_count", contact.UnreadCount)

	upload := handlers.NewUploadHandler(storageService)
	admin.Post("/upload", upload.Upload)

	// cron jobs
	refreshJob := job.NewSnapshotRefreshJob(postRepo, snapshot)
	refreshJob.Refresh()

	c := cron.New()
	c.AddFunc(cfg.SnapshotInterval, refreshJob.Refresh)
	c.Start()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, client)
}

func closeDB(client *mongo.Client) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := client.Disconnect(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, client *mongo.Client) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(client)
	log.Println("Server shutdown complete.")
}
