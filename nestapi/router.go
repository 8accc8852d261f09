package nestapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/nestlab/irregularpack/internal/netlog"
)

// version is the server's reported version string, surfaced by GET /.
const version = "1.0.0"

// Router builds the chi router exposing POST /nest, GET /, and GET /health.
func Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(cors)
	r.Use(middleware.Recoverer)

	r.Get("/", handleLiveness)
	r.Get("/health", handleHealth)
	r.Post("/nest", handleNest)
	return r
}

func handleLiveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"service": "irregularpack", "version": version})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleNest(w http.ResponseWriter, r *http.Request) {
	logger := netlog.FromContext(r.Context())

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	resp, err := Handle(req)
	if err != nil {
		if IsValidation(err) {
			logger.Warnf("rejected nesting request: %v", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Errorf("nesting request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal packing failure")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}

// cors permits cross-origin requests. The reference service this was
// distilled from scoped this to its local React dev origin; the API here
// is origin-agnostic, so allow-all is the conservative equivalent.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs method, path, status, latency, and request id for
// every request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logger := netlog.FromContext(r.Context())
		logger.Infof("[%s] %s %s -> %d (%s)",
			middleware.GetReqID(r.Context()), r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}

// requestID stamps each request with a UUID rather than chi's built-in
// counter-based id, so correlation ids remain unique across server
// restarts and across horizontally scaled instances. The id is also
// returned in the X-Request-Id response header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
