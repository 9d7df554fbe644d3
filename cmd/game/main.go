// cmd/game/main.go
package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"sand-line/internal/audio"
	"sand-line/internal/config"
	"sand-line/internal/logs"
	"sand-line/internal/metrics"
	"sand-line/internal/state"
)

var (
	configFile   string
	settingsFile string
	seed         int64
	debugAddr    string
	startInMenu  bool
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDeltaTime   float64
}

func (a *AppGame) Update() error {
	if a.stateMachine.QuitRequested() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDeltaTime {
		deltaTime = a.maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "sandline",
		Short: "Sand Line, a tile-based trench defense game",
		Long: `Hold the line against enemies advancing from the right edge.
Place units with a click, drag them between trenches and buy
supply depots and bunkers from the side menu.`,
		RunE: runGame,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a YAML/JSON/TOML config file")
	rootCmd.PersistentFlags().Int64VarP(&seed, "seed", "s", 0, "Spawn seed, 0 picks one from the clock")
	rootCmd.Flags().StringVar(&settingsFile, "settings", "settings.json", "Path to the player settings file")
	rootCmd.Flags().StringVar(&debugAddr, "debug-addr", "", "Serve pprof and /metrics on this address (overrides config)")
	rootCmd.Flags().BoolVarP(&startInMenu, "menu", "m", false, "Start from the main menu")

	rootCmd.AddCommand(newSimulateCmd())

	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Config{}, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logs.Init("sandline", cfg.Log); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logs.Sync() }()

	prefs, err := config.OpenPreferences(settingsFile)
	if err != nil {
		logs.Warn("settings unavailable, using defaults", zap.Error(err))
	}

	player := audio.NewPlayer(config.DefaultVolume)
	if err := player.Init(); err != nil {
		logs.Warn("audio disabled", zap.Error(err))
	}
	defer player.Close()

	if prefs != nil {
		player.SetVolume(prefs.Get().Volume)
		prefs.OnChange(func(p config.Preferences) {
			player.SetVolume(p.Volume)
			logs.Info("settings reloaded", zap.Int("volume", p.Volume))
		})
		prefs.OnError(func(err error) {
			logs.Warn("settings reload failed, keeping previous values", zap.Error(err))
		})
		prefs.Watch()
	}

	collector, err := metrics.NewGameCollector(nil)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	if debugAddr != "" {
		cfg.Debug.Addr = debugAddr
	}
	if cfg.Debug.Addr != "" {
		go serveDebug(cfg.Debug, collector)
	}

	svc := &state.Services{
		Config:      cfg,
		Preferences: prefs,
		Audio:       player,
		Metrics:     collector,
		FontFace:    basicfont.Face7x13,
	}

	sm := state.NewStateMachine()
	if startInMenu {
		sm.SetState(state.NewMenuState(sm, svc))
	} else {
		sm.SetState(state.NewGameState(sm, svc))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDeltaTime:   cfg.Timing.MaxFrameDelta.Seconds(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	logs.Info("starting", zap.Int64("seed", cfg.Seed), zap.Bool("menu", startInMenu))
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func serveDebug(cfg config.DebugConfig, collector *metrics.GameCollector) {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	if cfg.Metrics {
		mux.Handle("/metrics", collector.Handler())
	}
	logs.Info("debug server listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		logs.Warn("debug server stopped", zap.Error(err))
	}
}
