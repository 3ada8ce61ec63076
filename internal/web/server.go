package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/example/gowheels/internal/booking"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Bookings *booking.Service

	// Origins allowed to call the API from a browser. Requests without an
	// Origin header (curl, server-to-server) always pass.
	AllowedOrigins []string
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/book", s.handleBook)

	return logging(s.allowOrigins(mux))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Go Wheels backend is running"))
}

type bookResponse struct {
	Message string           `json:"message"`
	Booking *booking.Booking `json:"booking,omitempty"`
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, bookResponse{Message: "Method not allowed"})
		return
	}

	var req booking.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, bookResponse{Message: "Invalid request body."})
		return
	}

	b, err := s.Bookings.Submit(r.Context(), req)
	if err != nil {
		var ve *booking.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, bookResponse{Message: ve.Message})
			return
		}
		logrus.WithError(err).Error("booking failed")
		writeJSON(w, http.StatusInternalServerError, bookResponse{Message: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, bookResponse{Message: "Booking confirmed", Booking: &b})
}

// allowOrigins rejects browser requests from unlisted origins before they
// reach a handler. CORS response headers are only set for listed origins.
func (s *Server) allowOrigins(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(s.AllowedOrigins))
	for _, o := range s.AllowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}
		if !allowed[origin] {
			writeJSON(w, http.StatusForbidden, bookResponse{Message: "This origin is not allowed."})
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   sw.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Start(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	logrus.WithField("addr", addr).Info("listening")
	return srv.ListenAndServe()
}
