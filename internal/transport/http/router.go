package http

import (
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/go-openapi/runtime/middleware"
	gohandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
)

func NewRouter(th *TriggerHandler, logger hclog.Logger) http.Handler {
	router := mux.NewRouter()

	// Create a middleware instance
	mw := NewMiddleware(logger)

	// Apply global middleware; recovery sits outermost so nothing below it
	// can crash the process
	router.Use(mw.RecoveryMiddleware)
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	// The relay endpoint
	router.HandleFunc("/api/llms-full-trigger", th.Trigger).Methods(http.MethodPost)

	// Liveness probe
	router.HandleFunc("/healthz", th.Health).Methods(http.MethodGet)

	// Swagger UI and specification routes
	// Determine the absolute path to the swagger.yaml file
	_, filename, _, _ := runtime.Caller(0)
	// filename is the path to this file (router.go)
	basePath := filepath.Dir(filename)                        // .../internal/transport/http
	rootDir := filepath.Join(basePath, "..", "..", "..")      // Navigate up to the root
	swaggerFilePath := filepath.Join(rootDir, "swagger.yaml") // .../swagger.yaml

	// Serve the swagger.yaml file
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods(http.MethodGet)

	// Configure the Redoc middleware to point to the correct SpecURL
	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods(http.MethodGet)

	// CORS wrapper around the whole router; the webhook sender posts from
	// server-side code, so the policy stays permissive
	corsHandler := gohandlers.CORS(
		gohandlers.AllowedOrigins([]string{"*"}),
		gohandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gohandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return corsHandler(router)
}
