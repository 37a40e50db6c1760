package app

import (
	"net/http"

	"propnest-backend/internal/auth"
	"propnest-backend/internal/builders"
	"propnest-backend/internal/config"
	"propnest-backend/internal/database"
	"propnest-backend/internal/emails"
	"propnest-backend/internal/forum"
	"propnest-backend/internal/geocode"
	"propnest-backend/internal/health"
	"propnest-backend/internal/middleware"
	"propnest-backend/internal/projects"
	"propnest-backend/internal/properties"
	"propnest-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route registration.
// The opened database and Redis client are returned for startup pings.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}
	app, rdb, err := CreateAppWithDB(cfg, db)
	if err != nil {
		return nil, nil, nil, err
	}
	return app, db, rdb, nil
}

// CreateAppWithDB wires routes against an already-open database.
// db may be nil when DATABASE_URL is not set; DB-backed routes are then skipped.
func CreateAppWithDB(cfg *config.Config, db *gorm.DB) (*fiber.App, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	// CORS (before session)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	// Session (Redis); Redis client shared with health marker and auth
	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, err
	}
	app.Use(sessionHandler)

	// Health request marker (after session)
	app.Use(middleware.HealthMarker(rdb))

	// Dev mode flag for error envelopes
	app.Use(middleware.DevMode(cfg.IsDevelopment()))

	// Tracing + route logger
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	// --- Health ---
	var pinger health.DBPinger
	if db != nil {
		pinger = &gormPinger{db: db}
	}
	healthHandlers := &health.Handlers{
		Rdb:            rdb,
		DB:             pinger,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/errors", healthHandlers.Errors)
	app.Get("/health/reset", healthHandlers.Reset)

	// --- Auth ---
	var userFinder auth.UserFinder
	if db != nil {
		userFinder = &auth.GormUserFinder{DB: db}
	}
	authHandlers := &auth.Handlers{UserFinder: userFinder, Rdb: rdb, Config: sessionCfg}
	app.Post("/api/auth/login", authHandlers.Login)
	app.All("/api/auth/login", methodNotAllowed)
	app.Get("/api/auth/me", authHandlers.Me)
	app.All("/api/auth/me", methodNotAllowed)
	app.Delete("/api/auth/logout", authHandlers.Logout)
	app.All("/api/auth/logout", methodNotAllowed)

	if db == nil {
		return app, rdb, nil
	}

	mailer := &emails.BrevoClient{
		APIKey:    cfg.SendinblueAPIKey,
		MailFrom:  cfg.MailFrom,
		DeskEmail: cfg.ContactDeskEmail,
	}

	// --- Users / contact ---
	userHandlers := &users.Handlers{Service: &users.Service{DB: db}, Mailer: mailer}
	app.Post("/api/users/signup", userHandlers.Signup)
	app.All("/api/users/signup", methodNotAllowed)
	app.Post("/api/contact", userHandlers.Contact)
	app.All("/api/contact", methodNotAllowed)

	// --- Properties ---
	geocoder := &geocode.HTTPClient{BaseURL: cfg.GeocoderURL, APIKey: cfg.GeocoderAPIKey}
	propHandlers := &properties.Handlers{Service: &properties.Service{DB: db, Geocoder: geocoder}}

	app.Get("/api/properties/list", propHandlers.ListProperties)
	app.All("/api/properties/list", methodNotAllowed)
	app.Post("/api/properties/create", middleware.RequireAuth(), propHandlers.CreateProperty)
	app.All("/api/properties/create", methodNotAllowed)
	app.Post("/api/properties/archive", middleware.RequireAuth(), propHandlers.ArchiveProperty)
	app.All("/api/properties/archive", methodNotAllowed)
	app.Post("/api/properties/mark-sold", middleware.RequireAuth(), propHandlers.MarkSold)
	app.All("/api/properties/mark-sold", methodNotAllowed)

	favGroup := app.Group("/api/properties/favorites", middleware.RequireAuth())
	favGroup.Get("/", propHandlers.GetFavorites)
	favGroup.Post("/", propHandlers.SaveFavorite)
	favGroup.Delete("/:property_id", propHandlers.RemoveFavorite)
	app.All("/api/properties/favorites", methodNotAllowed)
	app.All("/api/properties/favorites/:property_id", methodNotAllowed)

	// --- Forum (reads are public, writes need a session) ---
	forumHandlers := &forum.Handlers{Service: &forum.Service{DB: db}}
	app.Get("/api/forum/posts", forumHandlers.ListPosts)
	app.Post("/api/forum/posts", middleware.RequireAuth(), forumHandlers.CreatePost)
	app.All("/api/forum/posts", methodNotAllowed)
	app.Get("/api/forum/posts/:post_id", forumHandlers.GetPost)
	app.All("/api/forum/posts/:post_id", methodNotAllowed)
	app.Post("/api/forum/replies", middleware.RequireAuth(), forumHandlers.CreateReply)
	app.All("/api/forum/replies", methodNotAllowed)
	app.Post("/api/forum/react", middleware.RequireAuth(), forumHandlers.React)
	app.All("/api/forum/react", methodNotAllowed)

	// --- Builders / projects ---
	builderHandlers := &builders.Handlers{Service: &builders.Service{DB: db}}
	app.Post("/api/builders/create", middleware.RequireAuth(), builderHandlers.CreateBuilder)
	app.All("/api/builders/create", methodNotAllowed)

	projectHandlers := &projects.Handlers{Service: &projects.Service{DB: db}}
	app.Post("/api/projects/create", middleware.RequireAuth(), projectHandlers.CreateProject)
	app.Get("/api/projects/list", projectHandlers.ListProjects)
	app.All("/api/projects/create", methodNotAllowed)
	app.All("/api/projects/list", methodNotAllowed)

	return app, rdb, nil
}

// methodNotAllowed serves paths that exist under a different HTTP method.
func methodNotAllowed(c *fiber.Ctx) error {
	return fiber.ErrMethodNotAllowed
}

type gormPinger struct{ db *gorm.DB }

func (p *gormPinger) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Handler returns the Fiber app as a net/http handler (serverless entry point).
func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
