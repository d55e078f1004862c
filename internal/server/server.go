// Package server wires the dashboard API: a chi router whose write endpoints
// are guarded by schema validation middleware.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/Gobd/apischema"
	"github.com/Gobd/apischema/internal/config"
	"github.com/Gobd/apischema/openapi"
	"github.com/Gobd/apischema/registry"
	"github.com/Gobd/apischema/sanitize"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// route binds a registered schema to a create endpoint.
type route struct {
	path        string
	schema      string
	operationID string
	summary     string
}

var routes = []route{
	{"/api/todos", "todo", "createTodo", "Create a todo"},
	{"/api/posts", "post", "createPost", "Schedule a social post"},
	{"/api/chat", "chatMessage", "sendChatMessage", "Send a message to the assistant"},
	{"/api/campaigns", "campaign", "createCampaign", "Create an ad campaign"},
	{"/api/revenue", "revenue", "recordRevenue", "Record a revenue entry"},
}

// Server is the HTTP front of the dashboard API.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	schemas *registry.Registry
	doc     *openapi3.T
	router  chi.Router
}

// New builds the router. Every route's schema must be present in schemas.
func New(cfg *config.Config, schemas *registry.Registry, logger *slog.Logger) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		schemas: schemas,
		doc:     openapi.DocBase(cfg.AppName, "Marketing operations dashboard API", "1.0.0"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, s.logRequests)

	for _, rt := range routes {
		schema, ok := schemas.Get(rt.schema)
		if !ok {
			return nil, fmt.Errorf("server: %w: %s", registry.ErrNotFound, rt.schema)
		}
		validate := apischema.Middleware(schema,
			apischema.WithMaxBodyBytes(cfg.MaxBodyBytes),
			apischema.WithLogger(logger),
		)
		r.With(validate).Post(rt.path, s.create(rt.schema))

		openapi.Post(s.doc, rt.path, rt.operationID, openapi.Endpoint{
			Summary: rt.summary,
			Request: schema,
			Responses: map[string]openapi.Response{
				"201": {Desc: "Created", Bodies: []any{createdEnvelope{}}},
			},
		})
	}

	docs, err := openapi.DocsHandler("/docs", s.doc)
	if err != nil {
		return nil, fmt.Errorf("server: openapi: %w", err)
	}
	r.Handle("/docs/*", docs)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	s.router = r
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr, "env", s.cfg.Env)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type createdEnvelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

var slugify = sanitize.Compose(
	sanitize.StringFunc(sanitize.StringOptions{MaxLength: 64}),
	strings.ToLower,
	func(s string) string { return strings.Join(strings.Fields(s), "-") },
)

// create echoes the sanitized payload with a new id. Persistence lives
// outside this service.
func (s *Server) create(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record := maps.Clone(apischema.Body(r))
		if record == nil {
			record = map[string]any{}
		}
		record["id"] = uuid.NewString()
		if name, ok := record["name"].(string); ok && kind == "campaign" {
			record["slug"] = slugify(name)
		}

		s.logger.InfoContext(r.Context(), "created", "resource", kind, "id", record["id"])
		writeJSON(w, http.StatusCreated, createdEnvelope{Success: true, Data: record})
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
