// Package httpapi — admin HTTP API: просмотр и снятие банов, просмотр доверенных подсетей.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/app"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ctxmeta"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/logger"
)

const requestIDHeader = "X-Request-Id"

type Server struct {
	failban    app.FailbanUseCase
	trusted    app.TrustedListUseCase
	secret     string
	now        func() time.Time
	log        *logger.Logger
	httpServer *http.Server
}

func NewServer(
	addr, secret string,
	failban app.FailbanUseCase,
	trusted app.TrustedListUseCase,
	log *logger.Logger,
) *Server {
	s := &Server{
		failban: failban,
		trusted: trusted,
		secret:  secret,
		now:     time.Now,
		log:     log,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// WithClock подменяет источник времени для расчёта expires_in.
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	return s
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		if s.secret != "" {
			r.Use(s.auth)
		}
		r.Get("/bans", s.listBans)
		r.Delete("/bans", s.unban)
		r.Get("/trusted", s.listTrusted)
	})
	return r
}

// ListenAndServe блокируется до Shutdown. Штатная остановка ошибкой не считается.
func (s *Server) ListenAndServe() error {
	s.log.Info("admin API started", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type banView struct {
	Subnet    string `json:"subnet"`
	ExpiresAt string `json:"expires_at"`
	ExpiresIn string `json:"expires_in"`
}

func (s *Server) listBans(w http.ResponseWriter, r *http.Request) {
	bans, err := s.failban.ListBans(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	now := s.now()
	views := make([]banView, 0, len(bans))
	for _, b := range bans {
		views = append(views, banView{
			Subnet:    b.Subnet.String(),
			ExpiresAt: b.ExpiresAt.UTC().Format(time.RFC3339),
			ExpiresIn: b.Remaining(now).Round(time.Second).String(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"bans": views})
}

func (s *Server) unban(w http.ResponseWriter, r *http.Request) {
	subnet := strings.TrimSpace(r.URL.Query().Get("subnet"))
	if subnet == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "subnet query parameter is required"})
		return
	}
	if err := s.failban.Unban(r.Context(), subnet); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listTrusted(w http.ResponseWriter, r *http.Request) {
	cidrs, err := s.trusted.ListTrusted(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if cidrs == nil {
		cidrs = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"cidrs": cidrs})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidSubnet):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	}
	if code != http.StatusBadRequest {
		s.log.ErrorContext(r.Context(), "admin request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearer, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if !ok || bearer != "Bearer" || token != s.secret {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, rid)
		next.ServeHTTP(w, r.WithContext(ctxmeta.WithRequestID(r.Context(), rid)))
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}
