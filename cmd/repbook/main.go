package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/common-nighthawk/go-figure"
	"github.com/kwhalen/repbook/internal/api"
	"github.com/kwhalen/repbook/internal/config"
	"github.com/kwhalen/repbook/internal/domain"
	"github.com/kwhalen/repbook/internal/log"
	"github.com/kwhalen/repbook/internal/search"
	"github.com/kwhalen/repbook/internal/session"
	"github.com/kwhalen/repbook/internal/store"
	"github.com/kwhalen/repbook/internal/storage"
	"github.com/kwhalen/repbook/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("repbook %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting repbook", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("repbook must be run in a terminal")
	}

	// Session persistence
	sessions, err := store.NewSessionStore(config.DefaultDataPath())
	if err != nil {
		logger.Warn("session store unavailable, sessions will not persist", "error", err)
		sessions, _ = store.NewSessionStore("")
	}
	defer sessions.Close()

	// Session manager and API client. The client reads the access token
	// through the manager, so a refresh is picked up by the next request.
	manager := session.NewManager(nil, sessions, logger)
	client := api.NewClient(cfg.Server.URL, manager, logger)
	manager.SetAuth(client)

	if err := manager.Restore(); err != nil {
		logger.Warn("could not restore session", "error", err)
	}

	// Video storage is optional; the upload action reports the missing
	// configuration when it is absent.
	var videos domain.VideoStorage
	if cfg.UploadsConfigured() {
		vs, err := storage.NewVideoStore(context.Background(), cfg.Storage, logger)
		if err != nil {
			logger.Warn("video storage unavailable", "error", err)
		} else {
			videos = vs
		}
	}

	model := tui.NewModel(
		manager,
		client,
		client,
		client,
		videos,
		search.ParseSortField(cfg.UI.DefaultSort),
		logger,
	)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when no server is configured
func runSetupFlow(cfg *config.Config) error {
	figure.NewFigure("repbook", "", true).Print()
	fmt.Println()
	fmt.Println("Welcome! Let's point repbook at your exercise server.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	var serverURL string
	for {
		fmt.Print("Enter the server URL (e.g., http://localhost:8000): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		serverURL = strings.TrimSpace(input)

		if serverURL == "" {
			fmt.Println("Server URL cannot be empty. Please try again.")
			continue
		}
		if _, err := url.ParseRequestURI(serverURL); err != nil {
			fmt.Println("That does not look like a URL. Please try again.")
			continue
		}

		if err := probeServer(serverURL); err != nil {
			fmt.Printf("\n✗ Could not reach the server: %v\n", err)
			fmt.Println("Please check the URL and try again.")
			fmt.Println()
			continue
		}
		break
	}

	cfg.Server.URL = serverURL
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run repbook again to log in.")

	return nil
}

// probeServer checks that something answers at the URL. Any HTTP response
// counts; only transport failures are rejected.
func probeServer(serverURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return api.Probe(ctx, serverURL)
}
