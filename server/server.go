package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/jmholzer/outvoice-api/config"
	"github.com/jmholzer/outvoice-api/core"
	"github.com/jmholzer/outvoice-api/invoice"
	appmiddleware "github.com/jmholzer/outvoice-api/server/middleware"
)

// Server is the HTTP surface around the address store and the invoice
// pipeline. It owns no business rules: every outcome is a translation of a
// store or pipeline result into a status code.
type Server struct {
	mux     *chi.Mux
	store   core.AddressStore
	mailer  invoice.Mailer
	spooler *invoice.Spooler
	logger  *slog.Logger
	cfg     *config.Config
}

// New creates a new server around the specified address store.
func New(cfg *config.Config, store core.AddressStore) *Server {
	server := &Server{
		mux:     chi.NewMux(),
		store:   store,
		spooler: invoice.NewSpooler(),
		logger:  slog.Default(),
		cfg:     cfg,
	}

	server.mux.Use(
		middleware.Recoverer,
		middleware.RealIP,
		middleware.RequestID,
		appmiddleware.HTTPLogger(cfg),
		middleware.Timeout(time.Duration(cfg.App.RequestTimeout)*time.Second),
	)
	server.routes()

	return server
}

func (server *Server) WithLogger(logger *slog.Logger) *Server {
	server.logger = logger
	return server
}

// WithMailer attaches the mailer used by the invoice e-mail method.
// Without one, that method responds 501.
func (server *Server) WithMailer(mailer invoice.Mailer) *Server {
	server.mailer = mailer
	return server
}

func (server *Server) WithSpooler(spooler *invoice.Spooler) *Server {
	server.spooler = spooler
	return server
}

func (server *Server) routes() {
	server.mux.Get("/ping", server.handle(server.handlePing))
	server.mux.Post("/client", server.handle(server.handleClient))
	server.mux.Post("/invoice", server.handle(server.handleInvoice))
}

func (server *Server) handlePing(w http.ResponseWriter, r *http.Request) error {
	render.PlainText(w, r, "pong")
	return nil
}

func (server *Server) handle(
	handler func(w http.ResponseWriter, r *http.Request) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handler(w, r); err != nil {
			server.handleError(w, r, err)
		}
		_ = r.Body.Close()
	}
}

// ServeHTTP implements [net/http.Handler].
func (server *Server) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	server.mux.ServeHTTP(writer, request)
}

// Start runs the server until the context is cancelled or an interrupt
// signal arrives, then shuts down gracefully within the configured timeout.
func (server *Server) Start(ctx context.Context) error {
	ctxServer, stopSignal := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignal()

	host := fmt.Sprintf("%v:%v", server.cfg.App.Host, server.cfg.App.Port)
	httpServer := &http.Server{
		Addr:              host,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errorCh := make(chan error)
	go func() {
		server.logger.Info("Starting server", "host", host)
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorCh <- err
		}
		close(errorCh)
	}()

	var errServer error
	select {
	case err := <-errorCh:
		errServer = err
	case <-ctxServer.Done():
		server.logger.Info("Server interrupt received")
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(
		context.Background(),
		time.Duration(server.cfg.App.ShutdownTimeout)*time.Second,
	)
	defer cancelShutdown()

	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		server.logger.Error("Could not shut down gracefully", "error", err)
	}
	sentryTimeout := max(0, time.Duration(server.cfg.App.ShutdownTimeout-1))
	sentry.Flush(sentryTimeout * time.Second)

	return errServer
}
