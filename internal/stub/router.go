package stub

import (
	"net/http"
	"sync"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// The prometheus middleware registers collectors with the default registry;
// build it once so tests can construct any number of routers.
var (
	promOnce    sync.Once
	promMW      echo.MiddlewareFunc
	promHandler echo.HandlerFunc
)

func prometheusMiddleware() (echo.MiddlewareFunc, echo.HandlerFunc) {
	promOnce.Do(func() {
		promMW = echoprometheus.NewMiddleware(metricsNamespace)
		promHandler = echoprometheus.NewHandler()
	})
	return promMW, promHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *Store, tokens *TokenManager, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	mw, handler := prometheusMiddleware()
	e.Use(mw)
	e.GET("/metrics", handler)

	// --- Handlers ---
	authHandler := NewAuthHandler(store, tokens)
	sessionHandler := NewSessionHandler(store)
	userHandler := NewUserHandler(store)
	teacherHandler := NewTeacherHandler(store)
	authMW := Auth(tokens)

	// --- Auth routes (no token required) ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register)

	// --- Session routes ---
	sessions := e.Group("/api/session", authMW)
	sessions.GET("", sessionHandler.List)
	sessions.GET("/:id", sessionHandler.Detail)
	sessions.POST("", sessionHandler.Create, RequireAdmin())
	sessions.PUT("/:id", sessionHandler.Update, RequireAdmin())
	sessions.DELETE("/:id", sessionHandler.Delete, RequireAdmin())
	sessions.POST("/:id/participate/:userId", sessionHandler.Participate)
	sessions.DELETE("/:id/participate/:userId", sessionHandler.Unparticipate)

	// --- User routes ---
	users := e.Group("/api/user", authMW)
	users.GET("/:id", userHandler.Get)
	users.DELETE("/:id", userHandler.Delete)

	// --- Teacher routes ---
	teachers := e.Group("/api/teacher", authMW)
	teachers.GET("", teacherHandler.List)
	teachers.GET("/:id", teacherHandler.Get)

	// --- Health probe (no auth required) ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}
