package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	otellib "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	servermiddleware "github.com/digitalmuseum/archive-api/cmd/server/internal/middleware"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/routes"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/routes/admin"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/routes/catalog"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/routes/competitions"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/routes/session"
	"github.com/digitalmuseum/archive-api/internal/auth"
	"github.com/digitalmuseum/archive-api/internal/config"
	"github.com/digitalmuseum/archive-api/internal/logger"
	"github.com/digitalmuseum/archive-api/internal/otel"
	"github.com/digitalmuseum/archive-api/internal/store"
	"github.com/digitalmuseum/archive-api/internal/tour"
)

const name string = "github.com/digitalmuseum/archive-api/server"

var tracer = otellib.Tracer(name)

type server struct {
	router       *echo.Echo
	config       *config.Config
	otelShutdown func(context.Context) error
}

func initServer(ctx context.Context) (*server, error) {
	server := new(server)

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize server config: %w", err)
	}
	server.config = cfg

	shutdownOTel, err := otel.SetupOTelSDK(ctx, cfg.Logging.UseOTLP)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OTEL SDK: %w", err)
	}
	defer func() {
		// Something failed to initialize, make sure everything gets flushed to the server
		if server.otelShutdown == nil {
			otelShutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				time.Second*time.Duration(cfg.GracefulShutdownSecs),
			)
			defer cancel()

			if err = shutdownOTel(otelShutdownCtx); err != nil {
				logger.Logger.Error("failed to flush otel data", "error", err)
			}
		}
	}()

	_, span := tracer.Start(ctx, "initServer")
	defer span.End()

	logger.LogLevel.Set(slog.Level(cfg.Logging.App.Level))

	archiveStore := store.NewSeeded()

	span.AddEvent("seeded the archive store")

	museumTour, err := tour.New(tour.SeedStops(), tour.NewIndex(tour.SeedPanoramas()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build virtual tour")
		return nil, fmt.Errorf("failed to build virtual tour: %w", err)
	}

	span.AddEvent("built the virtual tour")

	authService := auth.NewService(cfg.Session, cfg.Identities)

	span.AddEvent("loaded identities from config")

	middlewareHandler := servermiddleware.Handler{Auth: authService}

	e, err := routes.BuildEcho(logger.Logger, &middlewareHandler)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "error building router")
		return nil, fmt.Errorf("error building router: %w", err)
	}

	span.AddEvent("created echo router")

	catalog.Create(archiveStore, museumTour).AddRoutes(e)
	competitions.Create(archiveStore).AddRoutes(e)
	session.Create(authService, cfg.RateLimit).AddRoutes(e)
	admin.Create(archiveStore, authService).AddRoutes(e)

	server.otelShutdown = shutdownOTel
	server.router = e

	return server, nil
}

func (s *server) Start(_ context.Context) error {
	logger.Logger.Info("Starting services...")

	err := s.router.Start(s.config.ListenAddress)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *server) Shutdown() error {
	var errs error

	ctx, cancelTimeout := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(s.config.GracefulShutdownSecs),
	)
	defer cancelTimeout()

	if err := s.router.Shutdown(ctx); err != nil {
		errs = errors.Join(errs, err)
	}

	if s.otelShutdown != nil {
		errs = errors.Join(errs, s.otelShutdown(ctx))
	}

	return errs
}

func main() {
	ctx, cancelSignal := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)

	logger.InitSlog()

	server, err := initServer(ctx)
	if err != nil {
		logger.Logger.Error(err.Error())
		cancelSignal()
		os.Exit(1)
	}

	errch := make(chan error, 1)
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Got shutdown signal!")
		errch <- server.Shutdown()
		close(errch)
	}()

	if err := server.Start(ctx); err != nil {
		logger.Logger.Error(err.Error())
		cancelSignal()
		os.Exit(1)
	}

	if err := <-errch; err != nil {
		logger.Logger.Error("Error shutting down server", "error", err)
	}

	cancelSignal()
}
