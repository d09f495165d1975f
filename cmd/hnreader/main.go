package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/hnreader/pkg/config"
	"github.com/umputun/hnreader/pkg/feedsync"
	"github.com/umputun/hnreader/pkg/interaction"
	"github.com/umputun/hnreader/pkg/remote"
	"github.com/umputun/hnreader/pkg/repository"
	"github.com/umputun/hnreader/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	BaseURL string `long:"base-url" env:"BASE_URL" description:"public address used in RSS links"`
	Cleanup bool   `long:"cleanup" description:"purge stale cache entries at startup"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)
	lgr.Printf("[INFO] starting hnreader version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Printf("[INFO] shutdown complete")
}

// run wires the cache, remote clients and engine into the server and blocks until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()
	if version, dirty, err := repos.SchemaVersion(ctx); err == nil {
		lgr.Printf("[DEBUG] database schema version %d, dirty %v", version, dirty)
	}

	clientParams := remote.ClientParams{
		Timeout:    cfg.API.Timeout,
		MaxRetries: cfg.API.MaxRetries,
		RetryDelay: cfg.API.RetryDelay,
	}
	storyParams := clientParams
	storyParams.BaseURL = cfg.HN.BaseURL
	stories := remote.NewStoryClient(storyParams)

	searchParams := remote.SearchParams{ClientParams: clientParams, Query: cfg.Search.Query, HitsPerPage: cfg.Search.HitsPerPage}
	searchParams.BaseURL = cfg.Search.BaseURL
	search := remote.NewSearchClient(searchParams)

	engine := feedsync.New(feedsync.Params{
		Store:           repos.Feed,
		Stories:         stories,
		Search:          search,
		SearchStore:     repos.Search,
		PageSize:        cfg.Feed.PageSize,
		BatchSize:       cfg.API.BatchSize,
		MaxConcurrency:  cfg.API.MaxConcurrent,
		CacheMultiplier: cfg.Feed.CacheMultiplier,
	})

	if opts.Cleanup {
		retention := cfg.Retention()
		if _, err := engine.Cleanup(ctx, feedsync.CleanupParams{SearchRetention: retention, FeedRetention: retention}); err != nil {
			return fmt.Errorf("failed to clean up cache: %w", err)
		}
	}

	srv := server.New(cfg, server.Services{
		Feeds:    engine,
		Store:    server.NewRepositoryAdapter(repos),
		Actions:  interaction.NewManager(repos.Feed, repos.Search),
		Users:    stories,
		Remotes:  map[string]server.RemoteChecker{"hn": stories, "search": search},
		RSSLimit: cfg.Feed.PageSize,
		BaseURL:  opts.BaseURL,
	}, revision, opts.Debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadConfig reads the config file if set, applies defaults otherwise. Listen from CLI wins.
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if err := config.VerifyAgainstEmbeddedSchema(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLog configures lgr and redirects the std logger through it
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
