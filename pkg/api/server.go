package api

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"table_reservations/pkg/reservation"
)

//go:embed all:static
var staticFS embed.FS

type Options struct {
	ServiceName string
	Logger      *slog.Logger
	// CreateRateLimit is the number of create requests per second allowed per
	// client IP. Zero disables the limit.
	CreateRateLimit float64
	CreateRateBurst int
}

// NewRouter wires the reservation endpoints, the health check and the
// embedded booking and admin pages.
func NewRouter(svc *reservation.Service, opts Options) (*gin.Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.WithGroup("http")

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	bookingPage, err := fs.ReadFile(static, "index.html")
	if err != nil {
		return nil, err
	}
	adminPage, err := fs.ReadFile(static, "admin.html")
	if err != nil {
		return nil, err
	}

	mux := gin.New()
	mux.Use(
		sloggin.NewWithConfig(logger, sloggin.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
		}),
		gin.Recovery(),
		requestID(),
		otelgin.Middleware(opts.ServiceName),
		slogAddTraceAttributes,
	)

	h := NewHandler(svc, logger)

	createChain := make([]gin.HandlerFunc, 0, 2)
	if opts.CreateRateLimit > 0 {
		createChain = append(createChain, rateLimit(opts.CreateRateLimit, opts.CreateRateBurst))
	}
	createChain = append(createChain, h.CreateReservation)

	api := mux.Group("/api")
	api.POST("/reservations", createChain...)
	api.POST("/admin/login", h.AdminLogin)
	api.POST("/admin/reservations", h.ListReservations)
	api.DELETE("/admin/reservations/:id", h.DeleteReservation)

	mux.GET("/manage/health", h.HealthCheck)

	mux.GET("/", page(bookingPage))
	mux.GET("/admin", page(adminPage))
	mux.StaticFS("/static", http.FS(static))

	mux.NoRoute(notFound)

	return mux, nil
}

func page(body []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", body)
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
