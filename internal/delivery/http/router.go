package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"launchpage/internal/delivery/http/controllers"
	"launchpage/internal/delivery/http/middleware"
	"launchpage/internal/obs"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(subscriptionController *controllers.SubscriptionController, pageController *controllers.PageController, metrics *obs.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Landing page
	mux.HandleFunc("GET /{$}", pageController.Page)
	mux.HandleFunc("GET /countdown", pageController.CountdownJSON)

	// Subscribe, served under both paths the page and older clients use
	for _, path := range []string{"/subscribe", "/api/subscribe"} {
		mux.HandleFunc("POST "+path, subscriptionController.Subscribe)
		mux.HandleFunc("GET "+path, subscriptionController.Describe)
	}

	// Ops
	mux.HandleFunc("GET /healthz", Healthz)
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps mux with request logging, CORS and request metrics.
func NewHandler(logger *slog.Logger, corsOrigins []string, metrics *obs.Metrics, mux *http.ServeMux) http.Handler {
	return middleware.LoggingMiddleware(logger,
		middleware.CORS(corsOrigins,
			middleware.Metrics(metrics, mux)))
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
