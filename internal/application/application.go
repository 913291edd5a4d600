package application

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/tile-shop/internal/api"
	"github.com/eugenenazirov/tile-shop/internal/calculator"
	"github.com/eugenenazirov/tile-shop/internal/catalog"
	"github.com/eugenenazirov/tile-shop/internal/config"
	"github.com/eugenenazirov/tile-shop/internal/storage"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	storage    storage.Storage
	calculator calculator.Calculator
	handler    *api.Handler
	router     http.Handler
	logger     *zap.Logger
	server     *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	store := storage.NewMemoryStorage()
	if cfg.CatalogFile != "" {
		products, err := LoadCatalog(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		if err := store.SetProducts(products); err != nil {
			return nil, fmt.Errorf("failed to apply catalog %s: %w", cfg.CatalogFile, err)
		}
		logger.Info("catalog loaded",
			zap.String("file", cfg.CatalogFile),
			zap.Int("products", len(products)),
		)
	}

	calc := calculator.New(calculator.WithCartonCoverage(cfg.CartonCoverage))
	handler := api.NewHandler(calc, store, api.WithDefaultWasteFactor(cfg.DefaultWasteFactor))
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		storage:    store,
		calculator: calc,
		handler:    handler,
		router:     apiRouter,
		logger:     logger,
		server:     NewServer(cfg, apiRouter),
	}, nil
}

// LoadCatalog reads a product catalog from a YAML or XLSX file, chosen by
// extension. Relative paths that do not exist in the working directory are
// looked up from the project root.
func LoadCatalog(path string) ([]catalog.Product, error) {
	resolved := path
	if _, err := os.Stat(resolved); err != nil && !filepath.IsAbs(path) {
		if resolved, err = resolveProjectPath(path); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		return catalog.LoadYAML(f)
	case ".xlsx":
		return catalog.LoadXLSX(f)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .yaml, .yml or .xlsx)", filepath.Ext(resolved))
	}
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// resolveProjectPath locates a file or directory relative to the project root by walking up the directory tree.
func resolveProjectPath(relative string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, relative)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("unable to locate %s", relative)
}
