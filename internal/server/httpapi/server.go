// Package httpapi exposes the wallet authentication API over HTTP: login by
// email or phone, session check, and logout, with the session carried in a
// signed cookie.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/walletgate/walletgate/internal/logging"
	"github.com/walletgate/walletgate/internal/server/auth"
	"github.com/walletgate/walletgate/internal/wallet"
)

const shutdownWaitPeriod = 20 * time.Second

// Server owns the HTTP listener and the handlers behind it. Handlers hold no
// mutable state: every request is answered from its inputs, the injected
// deriver, and the session service.
type Server struct {
	logger   logging.Logger
	sessions *auth.Service
	deriver  *wallet.Deriver
	srv      *http.Server
}

// NewServer wires the API routes and prepares the listener on addr.
func NewServer(addr string, logger logging.Logger, sessions *auth.Service, deriver *wallet.Deriver) *Server {
	s := &Server{
		logger:   logger,
		sessions: sessions,
		deriver:  deriver,
	}
	s.srv = &http.Server{Addr: addr, Handler: s.Router()}
	return s
}

// Router builds the chi router for the API. Unmatched methods on known
// routes answer 405 with a JSON body instead of chi's plain-text default.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(s.methodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", s.ping)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/email", s.loginEmail)
			r.Post("/phone", s.loginPhone)
			r.Get("/session", s.session)
			r.Post("/logout", s.logout)
		})
	})

	return r
}

// Run starts the listener and blocks until ctx is canceled or the listener
// fails, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWaitPeriod)
	defer cancel()

	return s.srv.Shutdown(shutdownCtx)
}
