// @title           Reportboard API
// @version         1.0
// @description     Identity and Hygiene dashboard metrics.

// @host      localhost:8080
// @BasePath  /api/v1

package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	_ "reportboard/docs" // Swagger docs

	apiserver "reportboard/internal/api"
	apiapp "reportboard/internal/api/application"
	configapp "reportboard/internal/config/application"
	"reportboard/internal/infrastructure/database"
	"reportboard/internal/infrastructure/logger"
	"reportboard/internal/observability"
	"reportboard/internal/presentation"
	reportingapp "reportboard/internal/reporting/application"
	"reportboard/internal/reporting/domain"
	"reportboard/internal/reporting/infrastructure"
)

// env holds what every command needs once global flags are parsed
type env struct {
	cfg      *configapp.RuntimeConfig
	logger   *logger.Logger
	provider *infrastructure.StaticProvider
}

func newApp() *cli.App {
	e := &env{}

	return &cli.App{
		Name:  "reportboard",
		Usage: "Identity and Hygiene dashboard metrics",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Usage: "path to a .env file (default: .env)"},
			&cli.StringFlag{Name: "log-level", Usage: "DEBUG, INFO, WARN or ERROR"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json"},
			&cli.StringFlag{Name: "log-output", Usage: "stdout, stderr or a file path"},
			&cli.StringFlag{Name: "db", Usage: "SQLite database path for exports"},
			&cli.StringFlag{Name: "default-range", Usage: "range used when none is selected"},
		},
		Before: func(c *cli.Context) error {
			bootLogger := logger.NewLoggerFromEnv()
			configapp.LoadEnvFile(bootLogger, c.String("env-file"))

			e.cfg = configapp.LoadRuntimeConfig(
				"",
				c.String("log-level"),
				c.String("log-format"),
				c.String("log-output"),
				c.String("db"),
				c.String("default-range"),
				false,
			)
			e.logger = logger.NewLogger(e.cfg.LogLevel, e.cfg.LogFormat, e.cfg.LogOutput)
			logger.SetDefaultLogger(e.logger)
			e.provider = infrastructure.NewStaticProvider()
			return nil
		},
		Commands: []*cli.Command{
			serveCommand(e),
			showCommand(e),
			rangesCommand(e),
			exportCommand(e),
		},
	}
}

func serveCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "listen port (default: 8080)"},
			&cli.BoolFlag{Name: "dev", Usage: "enable development mode (Swagger UI)"},
		},
		Before: func(c *cli.Context) error {
			if c.IsSet("port") {
				e.cfg.APIPort = c.String("port")
			}
			if c.Bool("dev") {
				e.cfg.DevMode = true
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			return serve(c.Context, e)
		},
	}
}

func serve(ctx context.Context, e *env) error {
	appLogger := e.logger
	appLogger.Info("Starting reportboard", "version", "1.0")

	if err := e.cfg.Validate(); err != nil {
		appLogger.Error("Invalid configuration", "err", err)
		return err
	}

	sigCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, closeDB, err := openRepository(sigCtx, appLogger, e.cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	prom := observability.NewProm()
	if err := prom.RegisterSnapshots(e.provider); err != nil {
		appLogger.Error("Failed to register snapshot metrics", "err", err)
		return fmt.Errorf("failed to register snapshot metrics: %w", err)
	}

	reports := reportingapp.NewService(e.logger, e.provider, prom)
	exports := apiapp.NewExportService(repo)

	appLogger.Debug("Initializing API server")
	apiServer, err := apiserver.NewServer(appLogger, e.cfg, reports, exports, prom)
	if err != nil {
		appLogger.Error("Failed to create API server", "err", err)
		return fmt.Errorf("failed to create API server: %w", err)
	}

	// Start API server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	appLogger.Info("Reportboard started successfully, waiting for shutdown signal")

	// Wait for interrupt or server error
	select {
	case <-sigCtx.Done():
		appLogger.Info("Shutdown signal received, starting graceful shutdown")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("API server shutdown error: %w", err)
		}
		appLogger.Info("Graceful shutdown completed")
		return nil
	case err := <-serverErrChan:
		appLogger.Error("Server error received", "err", err)
		return err
	}
}

// openRepository opens separate read and write pools on the same file
func openRepository(ctx context.Context, appLogger *logger.Logger, path string) (*infrastructure.SQLiteRepository, func(), error) {
	appLogger.Debug("Connecting to database", "file", path)
	dbRead, err := database.ConnectSQLite(path)
	if err != nil {
		appLogger.Error("Failed to connect to read database", "err", err)
		return nil, nil, fmt.Errorf("failed to connect to read database: %w", err)
	}
	dbRead.SetMaxOpenConns(runtime.NumCPU())

	dbWrite, err := database.ConnectSQLite(path)
	if err != nil {
		dbRead.Close()
		appLogger.Error("Failed to connect to write database", "err", err)
		return nil, nil, fmt.Errorf("failed to connect to write database: %w", err)
	}
	dbWrite.SetMaxOpenConns(1)

	closeAll := func() {
		for _, db := range []*sql.DB{dbRead, dbWrite} {
			if err := db.Close(); err != nil {
				appLogger.Warn("Failed to close database", "err", err)
			}
		}
	}

	repo := infrastructure.NewSQLiteRepository(dbRead, dbWrite)
	if err := repo.Migrate(ctx); err != nil {
		closeAll()
		appLogger.Error("Failed to initialize schema", "err", err)
		return nil, nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	appLogger.Debug("Database schema initialized")

	return repo, closeAll, nil
}

func showCommand(e *env) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "range", Aliases: []string{"r"}, Usage: "time range key or label"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "table", Usage: "table, json or yaml"},
	}

	return &cli.Command{
		Name:  "show",
		Usage: "print a dashboard tab",
		Subcommands: []*cli.Command{
			{
				Name:  "identity",
				Usage: "print the Identity tab",
				Flags: flags,
				Action: func(c *cli.Context) error {
					svc, tr, err := e.reportInput(c.String("range"))
					if err != nil {
						return err
					}
					report, err := svc.IdentityReport(tr)
					if err != nil {
						return err
					}
					return write(c, report, func() error {
						return presentation.WriteIdentityReport(c.App.Writer, report)
					})
				},
			},
			{
				Name:  "hygiene",
				Usage: "print the Hygiene tab",
				Flags: flags,
				Action: func(c *cli.Context) error {
					svc, tr, err := e.reportInput(c.String("range"))
					if err != nil {
						return err
					}
					report, err := svc.HygieneReport(tr)
					if err != nil {
						return err
					}
					return write(c, report, func() error {
						return presentation.WriteHygieneReport(c.App.Writer, report)
					})
				},
			},
		},
	}
}

func (e *env) reportInput(rangeFlag string) (*reportingapp.Service, domain.TimeRange, error) {
	if err := e.cfg.Validate(); err != nil {
		e.logger.Error("Invalid configuration", "err", err)
		return nil, "", err
	}
	tr, err := reportingapp.ResolveRange(rangeFlag, e.cfg.Range())
	if err != nil {
		return nil, "", err
	}
	return reportingapp.NewService(e.logger, e.provider, nil), tr, nil
}

// write encodes v in the --format requested, table delegating to writeTable
func write(c *cli.Context, v any, writeTable func() error) error {
	switch c.String("format") {
	case "", "table":
		return writeTable()
	case "json":
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(c.App.Writer)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("unsupported format %q: expected table, json or yaml", c.String("format"))
}

func rangesCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "ranges",
		Usage: "list the selectable time ranges",
		Action: func(c *cli.Context) error {
			return presentation.WriteRanges(c.App.Writer, domain.TimeRanges())
		},
	}
}

func exportCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "store every snapshot as labelled samples in SQLite",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Usage: "SQLite database path (default: reportboard.db)"},
		},
		Before: func(c *cli.Context) error {
			if c.IsSet("db") {
				e.cfg.DBPath = c.String("db")
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			repo, closeDB, err := openRepository(c.Context, e.logger, e.cfg.DBPath)
			if err != nil {
				return err
			}
			defer closeDB()

			run, err := reportingapp.NewExporter(e.logger, e.provider, repo).Export(c.Context)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.App.Writer, "export %s: %s samples written to %s\n",
				run.ID, humanize.Comma(int64(run.Samples)), e.cfg.DBPath)
			return err
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		// Use default logger for final error message
		logger := logger.DefaultLogger()
		logger.Error("Application error", "err", err)
		os.Exit(1)
	}
}
