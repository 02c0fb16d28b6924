package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staffdesk/directory-api/internal/api/handler"
	"github.com/staffdesk/directory-api/internal/api/middleware"
	"github.com/staffdesk/directory-api/internal/core/domain"
	"github.com/staffdesk/directory-api/internal/core/service"
	"github.com/staffdesk/directory-api/internal/infrastructure/config"
	mongorepo "github.com/staffdesk/directory-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/staffdesk/directory-api/internal/infrastructure/db/redis"
	"github.com/staffdesk/directory-api/internal/infrastructure/storage"
)

// route is one entry of the registration table: a (method, path) pair, its
// handler, and an optional authorization guard. Guards are composed around
// individual handlers at registration time; there is no blanket auth
// middleware, so public, authenticated-only and role-gated routes coexist.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	guard   echo.MiddlewareFunc
}

// NewRouter wires repositories, services and handlers, then registers the
// route table onto a freshly constructed Echo instance. Registration order
// is the table order; handler errors flow to the central error handler.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("directory"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	employeeRepo := mongorepo.NewEmployeeRepository(db)

	fileStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.JWTExpiry)
	creds := service.NewCredentialService(codec)
	userService := service.NewUserService(userRepo, creds, log)
	employeeService := service.NewEmployeeService(employeeRepo, fileStore, redisrepo.NewReplayStore(rdb), log)

	userHandler := handler.NewUserHandler(userService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// Guard constructors: authenticated-only and admin-only.
	authenticated := middleware.Authorized(userRepo, cfg.JWTSecret)
	adminOnly := middleware.Authorized(userRepo, cfg.JWTSecret, domain.RoleAdmin)

	routes := []route{
		{echo.POST, "/signup", userHandler.SignUp, adminOnly},
		{echo.POST, "/signin", userHandler.SignIn, nil},
		{echo.POST, "/users/get-info", userHandler.GetInfo, authenticated},
		{echo.GET, "/users", userHandler.List, adminOnly},
		{echo.PUT, "/users", userHandler.Update, adminOnly},
		{echo.DELETE, "/users", userHandler.Delete, adminOnly},

		{echo.POST, "/employees", employeeHandler.Create, authenticated},
		{echo.POST, "/employees/get-info", employeeHandler.GetInfo, nil},
		{echo.POST, "/edit-employee", employeeHandler.Update, authenticated},
		{echo.GET, "/employees", employeeHandler.List, authenticated},
		{echo.DELETE, "/employees", employeeHandler.Delete, adminOnly},

		{echo.GET, "/health", healthHandler.Liveness, nil},
		{echo.GET, "/health/ready", healthHandler.Readiness, nil},
	}

	for _, r := range routes {
		if r.guard != nil {
			e.Add(r.method, r.path, r.handler, r.guard)
		} else {
			e.Add(r.method, r.path, r.handler)
		}
	}

	e.Static("/uploads", cfg.UploadDir)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
