package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"shipconfirm/cmd"
	httpin "shipconfirm/internal/adapters/in/http"
	"shipconfirm/internal/core/application/usecases/commands"
	"shipconfirm/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "shipconfirm",
		Short:         "Send shipment confirmations for orders that got a tracking number",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCommand(), newServeCommand())
	return root
}

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Process pending shipments once and exit",
		RunE: func(c *cobra.Command, _ []string) error {
			app, logger, closeLog, err := bootstrap()
			if err != nil {
				return err
			}
			defer closeLog()

			command, err := commands.NewProcessShipmentsCommand(kernel.NewRunID())
			if err != nil {
				return err
			}

			result, err := app.CreateProcessShipmentsCommandHandler().Handle(c.Context(), command)
			if err != nil {
				return err
			}
			logger.Info("Shipment confirmation run finished",
				"run_id", result.RunID.String(), "outcome", string(result.Outcome))
			return nil
		},
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run shipment confirmations on a schedule and expose the operational endpoints",
		RunE: func(c *cobra.Command, _ []string) error {
			app, logger, closeLog, err := bootstrap()
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			jobManager := app.CreateJobManager()
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			return startWebServer(ctx, app, jobManager, logger)
		},
	}
}

func bootstrap() (*cmd.CompositionRoot, *slog.Logger, func(), error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, nil, nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := cmd.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, nil, err
	}

	app, err := cmd.NewCompositionRoot(cfg, logger)
	if err != nil {
		closeLog()
		return nil, nil, nil, err
	}
	return app, logger, closeLog, nil
}

// newLogger writes text records to stdout and, when file is set, appends
// them to file.
func newLogger(level, file string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.Replace(strings.ToUpper(level), "WARNING", "WARN", 1))); err != nil {
		lvl = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	closeLog := func() {}

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, f)
		closeLog = func() { _ = f.Close() }
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), closeLog, nil
}

func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	trigger httpin.RunTrigger,
	logger *slog.Logger,
) error {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())

	app.CreateServer(trigger).RegisterRoutes(e)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", app.HTTPPort())
		logger.Info("HTTP server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
