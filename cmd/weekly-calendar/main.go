package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"reflect"
	"syscall"
	"time"

	"github.com/belphemur/weekly-calendar-card/internal/card"
	"github.com/belphemur/weekly-calendar-card/internal/config"
	"github.com/belphemur/weekly-calendar-card/internal/constants"
	"github.com/belphemur/weekly-calendar-card/internal/entity"
	"github.com/belphemur/weekly-calendar-card/internal/host"
	"github.com/belphemur/weekly-calendar-card/internal/logging"
	"github.com/belphemur/weekly-calendar-card/internal/render"
	"github.com/belphemur/weekly-calendar-card/internal/signals"
	"go.uber.org/atomic"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Determine if we're in development mode
	isDev := os.Getenv("ENV") != "production"

	logging.Initialize(isDev)
	logger := logging.GetLogger("main")

	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", date).
		Msg("Starting weekly calendar preview")

	// Create context that's canceled on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("Received signal, initiating shutdown")
		cancel()
	}()

	if err := run(ctx, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Application run failed")
	}
}

func run(ctx context.Context, out io.Writer) error {
	logger := logging.GetLogger("main")

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "configs/dashboard.toml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error().Err(err).Str("config_path", configPath).Msg("Failed to load configuration")
		return err
	}

	logging.SetLogLevel(cfg.Service.LogLevel)
	logger.Info().Str("log_level", cfg.Service.LogLevel).Str("output", cfg.Service.Output.String()).Msg("Configuration loaded")

	renderer, err := render.New(cfg.Service.Output)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	registry := host.NewRegistry()
	if err := registry.Register(constants.CardType, card.New); err != nil {
		return fmt.Errorf("failed to register card: %w", err)
	}
	logger.Debug().Strs("card_types", registry.Types()).Msg("Card types registered")

	store := entity.NewStore()
	seedStates(ctx, store, cfg.States)

	fixedToday, err := todayOverride(cfg)
	if err != nil {
		return err
	}
	clock := func() time.Time {
		if t := fixedToday.Load(); t != nil {
			return *t
		}
		return time.Now()
	}

	sink := host.SinkFunc(func(_ context.Context, slot host.Slot, view card.View) error {
		return renderer.Render(out, view)
	})
	dashboard := host.NewDashboard(registry, store, sink, host.WithClock(clock))

	dashboardLogger := logging.GetLogger("dashboard-events")
	signals.OnDashboardReconfigured(func(_ context.Context, data signals.DashboardReconfiguredData) {
		event := dashboardLogger.Info()
		if data.Failed > 0 {
			event = dashboardLogger.Warn()
		}
		event.Int("cards", data.Cards).Int("failed", data.Failed).Msg("Dashboard reconfigured")
	}, "main-dashboard-reconfigured")
	defer signals.OffDashboardReconfigured("main-dashboard-reconfigured")

	if err := dashboard.Configure(ctx, cfg.Dashboard.Cards); err != nil {
		logger.Error().Err(err).Msg("Some cards failed to set up")
		if len(dashboard.Slots()) == 0 {
			return fmt.Errorf("no card could be set up: %w", err)
		}
	}
	logger.Info().
		Int("cards", len(dashboard.Slots())).
		Int("layout_size", dashboard.LayoutSize()).
		Uint64("views", dashboard.Published()).
		Msg("Dashboard rendered")

	if !cfg.Service.Watch {
		return nil
	}

	stopListening := dashboard.Listen()
	defer stopListening()

	stopWatching, err := config.Watch(configPath, func(newCfg *config.Config) {
		reloadLogger := logging.GetLogger("config-reload")
		if newCfg.Service.Output != cfg.Service.Output {
			reloadLogger.Warn().Str("output", newCfg.Service.Output.String()).Msg("Output format changes need a restart")
		}
		logging.SetLogLevel(newCfg.Service.LogLevel)

		next, err := todayOverride(newCfg)
		if err != nil {
			reloadLogger.Error().Err(err).Msg("Invalid reference date")
			return
		}
		fixedToday.Store(next.Load())

		seedStates(ctx, store, newCfg.States)
		if err := dashboard.Configure(ctx, newCfg.Dashboard.Cards); err != nil {
			reloadLogger.Error().Err(err).Msg("Some cards failed to set up after reload")
		}
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := stopWatching(); err != nil {
			logger.Warn().Err(err).Msg("Failed to stop config watcher")
		}
	}()

	logger.Info().Str("config_path", configPath).Msg("Watching configuration for changes")
	<-ctx.Done()
	logger.Info().Uint64("views", dashboard.Published()).Msg("Shutdown complete")
	return nil
}

// seedStates makes the store hold exactly the configured states. Unchanged
// states keep their version so cards watching them are not re-rendered.
func seedStates(ctx context.Context, store *entity.Store, states []config.StateConfig) {
	wanted := make(map[string]bool, len(states))
	for _, s := range states {
		wanted[s.EntityID] = true
		if current, ok := store.State(s.EntityID); ok && current.State == s.State && reflect.DeepEqual(current.Attributes, s.Attributes) {
			continue
		}
		store.Set(ctx, s.EntityID, s.State, s.Attributes)
	}
	for id := range store.Snapshot() {
		if !wanted[id] {
			store.Remove(ctx, id)
		}
	}
}

func todayOverride(cfg *config.Config) (*atomic.Pointer[time.Time], error) {
	today, ok, err := cfg.TodayDate(time.Local)
	if err != nil {
		return nil, err
	}
	if !ok {
		return atomic.NewPointer[time.Time](nil), nil
	}
	return atomic.NewPointer(&today), nil
}
