package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tinytelemetry/factcard/internal/logging"
	"github.com/tinytelemetry/factcard/internal/mockapi"

	"golang.org/x/sync/errgroup"
)

// Build variables - set by ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var statuses string
	var showVersion bool

	flag.StringVar(&statuses, "statuses", "", "comma-separated status cycle, overrides FACTMOCK_STATUSES (e.g. 200,500)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("factmock - Fact API Mock\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		return
	}

	cfg, err := loadMockConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if statuses != "" {
		codes, err := mockapi.ParseStatuses(statuses)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Statuses = codes
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runMock(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMock(ctx context.Context, cfg mockConfig) error {
	logger, err := logging.Console(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	opts := []mockapi.Option{
		mockapi.WithStatuses(cfg.Statuses),
		mockapi.WithLogger(logger),
	}
	if cfg.Seed != 0 {
		opts = append(opts, mockapi.WithSeed(cfg.Seed))
	}

	srv := mockapi.NewServer(cfg.Addr, opts...)
	if err := srv.Listen(); err != nil {
		return fmt.Errorf("starting mock api on %s: %w", cfg.Addr, err)
	}

	logger.Info().
		Str("facts", "http://"+srv.Addr()+"/facts/random").
		Str("jokes", "http://"+srv.Addr()+"/jokes/random").
		Ints("statuses", cfg.Statuses).
		Msg("factmock ready")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Serve)

	// A Serve failure cancels gctx, so shutdown runs on error as well as on signal.
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down")
		return srv.Stop()
	})

	return g.Wait()
}
