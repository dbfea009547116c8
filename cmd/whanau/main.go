//	@title			Whanau API
//	@version		1.0
//	@description	Family graph with relationship inference, ancestral lines and owner-approved edits.
//	@BasePath		/
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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/whanau/internal/api"
	"github.com/mtlprog/whanau/internal/config"
	"github.com/mtlprog/whanau/internal/database"
	"github.com/mtlprog/whanau/internal/family"
	"github.com/mtlprog/whanau/internal/fixture"
	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/logger"
	"github.com/mtlprog/whanau/internal/middleware"
	"github.com/mtlprog/whanau/internal/repository"
	"github.com/urfave/cli/v2"
)

// defaultConfigFile is read when --config is not given and the file exists.
const defaultConfigFile = "whanau.toml"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	databaseURL := &cli.StringFlag{
		Name:    "database-url",
		Aliases: []string{"d"},
		Value:   config.DefaultDatabaseURL,
		Usage:   "PostgreSQL connection URL",
		EnvVars: []string{"DATABASE_URL"},
	}

	return &cli.App{
		Name:  "whanau",
		Usage: "Family graph and relationship inference",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file (default " + defaultConfigFile + " if present)",
				EnvVars: []string{"WHANAU_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run migrations and start the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
					databaseURL,
					&cli.IntFlag{
						Name:    "rate-limit",
						Value:   config.DefaultRateLimit,
						Usage:   "Mutating requests per minute per IP (0 disables)",
						EnvVars: []string{"RATE_LIMIT"},
					},
					&cli.IntFlag{
						Name:    "max-depth",
						Value:   config.DefaultMaxDepth,
						Usage:   "Generations searched when classifying relationships",
						EnvVars: []string{"MAX_DEPTH"},
					},
					&cli.BoolFlag{
						Name:    "ancestor-cache",
						Usage:   "Memoise ancestor maps in process (single instance only)",
						EnvVars: []string{"ANCESTOR_CACHE"},
					},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "Apply database migrations",
				Flags:  []cli.Flag{databaseURL},
				Action: migrate,
			},
			{
				Name:      "relate",
				Usage:     "Describe how B is related to A using a TOML family file",
				ArgsUsage: "A B",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "TOML family file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-depth",
						Value: config.DefaultMaxDepth,
						Usage: "Generations searched when classifying relationships",
					},
				},
				Action: relate,
			},
		},
	}
}

// loadConfig layers the config file under flags and environment variables.
func loadConfig(c *cli.Context) (config.Config, error) {
	path := c.String("config")
	if path == "" && config.Exists(defaultConfigFile) {
		path = defaultConfigFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if c.IsSet("log-level") || cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = c.String("log-level")
	}
	if c.IsSet("port") {
		cfg.Server.Port = c.String("port")
	}
	if c.IsSet("rate-limit") {
		cfg.Server.RateLimit = c.Int("rate-limit")
	}
	if c.IsSet("database-url") {
		cfg.Database.URL = c.String("database-url")
	}
	if c.IsSet("max-depth") {
		cfg.Kinship.MaxDepth = c.Int("max-depth")
	}
	if c.IsSet("ancestor-cache") {
		cfg.Kinship.AncestorCache = c.Bool("ancestor-cache")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Setup(logger.ParseLevel(cfg.Server.LogLevel))
	return cfg, nil
}

func connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.Database.URL == "" {
		return nil, errors.New("database URL is required (--database-url or DATABASE_URL)")
	}
	pool, err := database.Connect(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}

func migrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	pool, err := connect(c.Context, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	return database.Migrate(c.Context, pool)
}

// newFamilyService wires the PostgreSQL repositories, the classifier and the
// guard. The ancestor cache is only built when enabled in cfg.
func newFamilyService(pool *pgxpool.Pool, cfg config.KinshipConfig) (*family.Service, error) {
	graph, err := repository.NewGraphRepository(pool)
	if err != nil {
		return nil, err
	}
	edges, err := repository.NewEdgeRepository(pool)
	if err != nil {
		return nil, err
	}
	people, err := repository.NewPersonRepository(pool)
	if err != nil {
		return nil, err
	}
	partnerships, err := repository.NewPartnershipRepository(pool)
	if err != nil {
		return nil, err
	}
	requests, err := repository.NewRequestRepository(pool)
	if err != nil {
		return nil, err
	}

	classifierOpts := []kinship.ClassifierOption{kinship.WithMaxDepth(cfg.MaxDepth)}
	var guardOpts []kinship.GuardOption
	if cfg.AncestorCache {
		cache := kinship.NewAncestorCache(graph)
		people.Observe(cache)
		classifierOpts = append(classifierOpts, kinship.WithAncestorCache(cache))
		guardOpts = append(guardOpts, kinship.WithInvalidator(cache))
	}

	classifier, err := kinship.NewClassifier(graph, classifierOpts...)
	if err != nil {
		return nil, fmt.Errorf("create classifier: %w", err)
	}
	guard, err := kinship.NewGuard(edges, guardOpts...)
	if err != nil {
		return nil, fmt.Errorf("create guard: %w", err)
	}

	return family.New(family.Deps{
		People:       people,
		Edges:        edges,
		Partnerships: partnerships,
		Requests:     requests,
		Classifier:   classifier,
		Guard:        guard,
	})
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	pool, err := connect(c.Context, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(c.Context, pool); err != nil {
		return err
	}

	svc, err := newFamilyService(pool, cfg.Kinship)
	if err != nil {
		return fmt.Errorf("failed to create family service: %w", err)
	}
	h, err := api.New(svc, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create api handler: %w", err)
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	handler := middleware.CacheControl(mux)
	if cfg.Server.RateLimit > 0 {
		limiter, err := middleware.New(cfg.Server.RateLimit)
		if err != nil {
			return fmt.Errorf("failed to create rate limiter: %w", err)
		}
		defer limiter.Close()
		handler = limiter.Middleware(handler)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+cfg.Server.Port, "max_depth", cfg.Kinship.MaxDepth, "ancestor_cache", cfg.Kinship.AncestorCache)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func relate(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected two person ids, got %d", c.NArg())
	}
	a, b := c.Args().Get(0), c.Args().Get(1)

	graph, err := fixture.Load(c.Context, c.String("file"))
	if err != nil {
		return err
	}
	for _, id := range []string{a, b} {
		if _, err := graph.GetPerson(c.Context, id); err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
	}

	classifier, err := kinship.NewClassifier(graph, kinship.WithMaxDepth(c.Int("max-depth")))
	if err != nil {
		return err
	}
	label, err := classifier.DescribeRelationship(c.Context, a, b)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, label)
	return err
}
