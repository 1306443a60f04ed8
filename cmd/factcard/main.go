package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tinytelemetry/factcard/internal/fetch"
	"github.com/tinytelemetry/factcard/internal/logging"
	"github.com/tinytelemetry/factcard/internal/model"
	"github.com/tinytelemetry/factcard/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var variant string
	var endpoint string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/factcard/config.yml)")
	flag.StringVar(&variant, "variant", "", "source to display: "+strings.Join(model.VariantNames(), ", "))
	flag.StringVar(&endpoint, "endpoint", "", "override the variant's endpoint URL (e.g. a local factmock)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("factcard - Remote Fact Viewer\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if variant != "" {
		cfg.Variant = variant
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if cfg.UserAgent == model.DefaultUserAgent && version != "dev" {
		cfg.UserAgent = "factcard/" + version
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	variant, err := cfg.resolveVariant()
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger = logger.With().Str("variant", variant.Name).Logger()
	if cfg.ConfigPath != "" {
		logger.Debug().Str("config", cfg.ConfigPath).Msg("config loaded")
	}

	fetcher, err := fetch.New(variant.Endpoint,
		fetch.WithField(variant.Field),
		fetch.WithNoun(variant.Noun),
		fetch.WithTimeout(cfg.RequestTimeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	factModel := tui.NewFactModel(variant, fetcher, tui.WithContext(ctx), tui.WithLogger(logger))
	app := tui.NewApp(tui.NewFactPage(factModel))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
