package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/AhmetOsmn/ufc-events-ui/internal/api"
	"github.com/AhmetOsmn/ufc-events-ui/internal/config"
	"github.com/AhmetOsmn/ufc-events-ui/internal/eventbus"
	"github.com/AhmetOsmn/ufc-events-ui/internal/logging"
	"github.com/AhmetOsmn/ufc-events-ui/internal/query"
	"github.com/AhmetOsmn/ufc-events-ui/internal/theme"
	"github.com/AhmetOsmn/ufc-events-ui/internal/ui"
)

func main() {
	var baseURL string
	var logPath string
	flag.StringVar(&baseURL, "api", "", "API base URL (overrides config and environment)")
	flag.StringVar(&logPath, "log", "ufc-events-ui.log", "Log file path")
	flag.Parse()

	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	log, cleanup, err := logging.NewFile(logPath, logging.LevelInfo)
	if err != nil {
		log = logging.NewNop()
	} else {
		defer cleanup()
	}

	bus := eventbus.New(log)
	defer bus.Close()
	eventbus.AttachLogger(bus, log)

	configSvc := config.NewServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Warn("failed to load config, using defaults", zap.Error(err))
		cfg = config.Default()
	}
	cfg.ApplyEnv()
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}

	themes := theme.NewStore(cfg, configSvc, bus, log)
	themes.Init()

	client := api.NewClient(api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.Timeout(),
		Logger:  log,
	})

	eventsQuery := query.NewEventsQuery(client, bus, log)
	mutation := query.NewCalendarMutation(client, bus, log)
	classifier := api.NewClassifier()

	log.Info("starting",
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("theme", string(themes.Current())))

	model := ui.NewModel(cfg, bus, eventsQuery, mutation, classifier, themes, log)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
