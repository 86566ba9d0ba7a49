package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/elys-network/poolboard/internal/datafetcher"
	"github.com/elys-network/poolboard/internal/logger"
	"github.com/elys-network/poolboard/internal/render"
	"github.com/elys-network/poolboard/internal/types"
	"github.com/elys-network/poolboard/internal/view"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var webLogger = logger.GetForComponent("web_server")

const (
	// maxPoolBodyBytes caps the size of a pool set upload.
	maxPoolBodyBytes = 16 << 20
	dashboardPath    = "/dashboard"
)

// Options configures a WebServer.
type Options struct {
	Port       string
	SessionTTL time.Duration
	// MaxSessions caps live sessions; <= 0 means DefaultMaxSessions.
	MaxSessions int
	View        view.Config
	Pools       *datafetcher.PoolStore
	// Registry receives the server metrics and backs /metrics; nil uses a fresh registry.
	Registry *prometheus.Registry
}

// WebServer serves the pool table as HTML and JSON, one view per session.
type WebServer struct {
	router   *mux.Router
	port     string
	pools    *datafetcher.PoolStore
	sessions *SessionStore
	metrics  *Metrics
	registry *prometheus.Registry
	html     *render.HTMLRenderer
	started  time.Time
}

// NewWebServer creates a new web server instance
func NewWebServer(opts Options) (*WebServer, error) {
	if opts.Port == "" {
		opts.Port = "8080"
	}
	if opts.Pools == nil {
		opts.Pools = datafetcher.NewPoolStore(nil)
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	html, err := render.NewHTMLRenderer(dashboardPath)
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics(opts.Registry)
	server := &WebServer{
		router:   mux.NewRouter(),
		port:     opts.Port,
		pools:    opts.Pools,
		sessions: NewSessionStore(opts.SessionTTL, opts.MaxSessions, opts.View, metrics),
		metrics:  metrics,
		registry: opts.Registry,
		html:     html,
		started:  time.Now(),
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all HTTP routes
func (ws *WebServer) setupRoutes() {
	// Dashboard routes
	ws.router.HandleFunc("/", ws.handleDashboard).Methods("GET")
	ws.router.HandleFunc(dashboardPath, ws.handleDashboard).Methods("GET")
	ws.router.HandleFunc(dashboardPath+"/sort/{field}", ws.handleDashboardSort).Methods("POST")
	ws.router.HandleFunc(dashboardPath+"/more", ws.handleDashboardMore).Methods("POST")

	// Health and metrics endpoints (direct routes)
	ws.router.HandleFunc("/health", ws.handleHealth).Methods("GET")
	ws.router.Handle("/metrics", promhttp.HandlerFor(ws.registry, promhttp.HandlerOpts{})).Methods("GET")

	// API endpoints
	api := ws.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", ws.handleHealth).Methods("GET")
	api.HandleFunc("/pools", ws.handleGetPools).Methods("GET")
	api.HandleFunc("/pools", ws.handleReplacePools).Methods("PUT")
	api.HandleFunc("/pools/sort/{field}", ws.handleSelectSort).Methods("POST")
	api.HandleFunc("/pools/more", ws.handleShowMore).Methods("POST")

	ws.router.Use(ws.loggingMiddleware)
}

// Handler returns the root handler. CORS wraps the router from outside since
// mux only runs its middleware for matched routes, and preflight OPTIONS
// requests match none.
func (ws *WebServer) Handler() http.Handler {
	return ws.corsMiddleware(ws.router)
}

// Sessions returns the session store.
func (ws *WebServer) Sessions() *SessionStore {
	return ws.sessions
}

// Start serves until ctx is cancelled, then shuts down gracefully. Idle sessions
// are swept once per TTL while running.
func (ws *WebServer) Start(ctx context.Context) error {
	webLogger.Info().Str("port", ws.port).Msg("Starting web server")

	server := &http.Server{
		Addr:         ":" + ws.port,
		Handler:      ws.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go ws.sweepSessions(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	webLogger.Info().Msg("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web server shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (ws *WebServer) sweepSessions(ctx context.Context) {
	interval := ws.sessions.ttl
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ws.sessions.Sweep()
		}
	}
}

// withView runs fn on the caller's view after handing it the current pool set,
// and returns the resulting snapshot.
func (ws *WebServer) withView(w http.ResponseWriter, r *http.Request, fn func(v *view.PoolListView)) types.ListSnapshot {
	sess := ws.sessions.sessionFromRequest(w, r)
	set := ws.pools.Current()
	ws.metrics.poolsServed.Set(float64(set.Len()))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.view.SetPools(set)
	if fn != nil {
		fn(sess.view)
	}
	return sess.view.Snapshot()
}

// handleHealth returns server health status
func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	source, loadedAt, count := ws.pools.Info()
	loaded := ws.pools.Loaded()

	status := "OK"
	if !loaded {
		status = "DEGRADED"
	}

	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"system": map[string]interface{}{
			"version":            runtime.Version(),
			"goroutines_count":   runtime.NumGoroutine(),
			"heap_objects_count": memStats.HeapObjects,
			"alloc_bytes":        memStats.Alloc,
			"sys_bytes":          memStats.Sys,
			"gc_cycles":          memStats.NumGC,
			"uptime_seconds":     int64(time.Since(ws.started).Seconds()),
		},
		"component": map[string]interface{}{
			"name":    "poolboard",
			"version": "1.0.0",
		},
		"pools": map[string]interface{}{
			"loaded":    loaded,
			"count":     count,
			"source":    source,
			"loaded_at": loadedAt.UTC(),
		},
		"sessions": ws.sessions.Len(),
	}

	// A server without pools still answers; the table shows the loading state.
	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleDashboard serves the pool table as HTML
func (ws *WebServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap := ws.withView(w, r, nil)

	var buf bytes.Buffer
	if err := ws.html.Render(&buf, snap); err != nil {
		webLogger.Error().Err(err).Msg("Failed to render dashboard")
		ws.writeErrorResponse(w, http.StatusInternalServerError, "Failed to render pool table")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (ws *WebServer) handleDashboardSort(w http.ResponseWriter, r *http.Request) {
	field, err := types.ParseSortField(mux.Vars(r)["field"])
	if err != nil {
		ws.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	ws.withView(w, r, func(v *view.PoolListView) {
		ws.recordSort(v.SelectSort(field))
	})
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}

func (ws *WebServer) handleDashboardMore(w http.ResponseWriter, r *http.Request) {
	ws.withView(w, r, func(v *view.PoolListView) {
		ws.recordShowMore(v.ShowMore())
	})
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}

// handleGetPools returns the caller's current table snapshot
func (ws *WebServer) handleGetPools(w http.ResponseWriter, r *http.Request) {
	snap := ws.withView(w, r, func(v *view.PoolListView) {
		if sizeStr := r.URL.Query().Get("page_size"); sizeStr != "" {
			if size, err := strconv.Atoi(sizeStr); err == nil && size > 0 && size <= 100 {
				v.SetPageSize(size)
			}
		}
	})
	ws.writeJSONResponse(w, http.StatusOK, snap)
}

// handleSelectSort applies a column header click
func (ws *WebServer) handleSelectSort(w http.ResponseWriter, r *http.Request) {
	field, err := types.ParseSortField(mux.Vars(r)["field"])
	if err != nil {
		ws.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	snap := ws.withView(w, r, func(v *view.PoolListView) {
		ws.recordSort(v.SelectSort(field))
	})
	ws.writeJSONResponse(w, http.StatusOK, snap)
}

// handleShowMore grows the caller's window by one page
func (ws *WebServer) handleShowMore(w http.ResponseWriter, r *http.Request) {
	snap := ws.withView(w, r, func(v *view.PoolListView) {
		ws.recordShowMore(v.ShowMore())
	})
	ws.writeJSONResponse(w, http.StatusOK, snap)
}

// handleReplacePools replaces the pool set for every session
func (ws *WebServer) handleReplacePools(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxPoolBodyBytes)
	set, err := datafetcher.DecodePools(body)
	if err != nil {
		webLogger.Warn().Err(err).Msg("Rejected pool set upload")
		ws.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ws.pools.Replace(set, "api")
	ws.metrics.poolReplacement.Inc()
	ws.metrics.poolsServed.Set(float64(set.Len()))

	ws.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"pools":     set.Len(),
		"timestamp": time.Now().UTC(),
	})
}

func (ws *WebServer) recordSort(state types.SortState) {
	direction := "ascending"
	if state.Descending {
		direction = "descending"
	}
	ws.metrics.sortSelections.WithLabelValues(state.Field.String(), direction).Inc()
}

func (ws *WebServer) recordShowMore(advanced bool) {
	result := "advanced"
	if !advanced {
		result = "last_page"
	}
	ws.metrics.showMoreTotal.WithLabelValues(result).Inc()
}

// writeJSONResponse writes a JSON response
func (ws *WebServer) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		webLogger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeErrorResponse writes an error response
func (ws *WebServer) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := map[string]interface{}{
		"error":     true,
		"message":   message,
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// corsMiddleware adds CORS headers
func (ws *WebServer) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests and records request metrics
func (ws *WebServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a response writer wrapper to capture status code
		wrapper := &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		ws.metrics.requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(wrapper.statusCode)).Inc()
		ws.metrics.requestDuration.WithLabelValues(route).Observe(duration.Seconds())

		webLogger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Msg("HTTP request")
	})
}

// responseWriterWrapper wraps http.ResponseWriter to capture status code
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
