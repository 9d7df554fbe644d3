// internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "SANDLINE"

// Load reads the configuration from path (optional) and SANDLINE_* environment
// variables on top of Default.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("board.width", d.Board.Width)
	v.SetDefault("board.height", d.Board.Height)
	v.SetDefault("board.cell_size", d.Board.CellSize)
	v.SetDefault("board.buildable_columns", d.Board.BuildableColumns)
	v.SetDefault("board.supply_columns", d.Board.SupplyColumns)

	v.SetDefault("economy.start_supply", d.Economy.StartSupply)
	v.SetDefault("economy.start_ammunition", d.Economy.StartAmmunition)
	v.SetDefault("economy.start_production", d.Economy.StartProduction)
	v.SetDefault("economy.ammunition_rate", d.Economy.AmmunitionRate)
	v.SetDefault("economy.production_rate", d.Economy.ProductionRate)
	v.SetDefault("economy.unit_ammunition_cost", d.Economy.UnitAmmunitionCost)
	v.SetDefault("economy.unit_production_cost", d.Economy.UnitProductionCost)
	v.SetDefault("economy.supply_cost", d.Economy.SupplyCost)
	v.SetDefault("economy.defense_cost", d.Economy.DefenseCost)

	v.SetDefault("combat.unit_health", d.Combat.UnitHealth)
	v.SetDefault("combat.player_damage", d.Combat.PlayerDamage)
	v.SetDefault("combat.defended_player_damage", d.Combat.DefendedPlayerDamage)
	v.SetDefault("combat.enemy_damage", d.Combat.EnemyDamage)

	v.SetDefault("timing.advance_interval", d.Timing.AdvanceInterval.String())
	v.SetDefault("timing.accrual_interval", d.Timing.AccrualInterval.String())
	v.SetDefault("timing.max_frame_delta", d.Timing.MaxFrameDelta.String())

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("log.dev", d.Log.Dev)

	v.SetDefault("debug.addr", d.Debug.Addr)
	v.SetDefault("debug.metrics", d.Debug.Metrics)
	v.SetDefault("seed", d.Seed)
}

// Validate checks that the board and the rules describe a playable game.
func (c Config) Validate() error {
	b := c.Board
	switch {
	case b.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, b.CellSize)
	case b.Width <= 0 || b.Width%b.CellSize != 0:
		return fmt.Errorf("%w: width %d is not a multiple of cell size %d", ErrInvalidConfig, b.Width, b.CellSize)
	case b.Height <= 0 || b.Height%b.CellSize != 0:
		return fmt.Errorf("%w: height %d is not a multiple of cell size %d", ErrInvalidConfig, b.Height, b.CellSize)
	case b.BuildableColumns < 1 || b.BuildableColumns >= b.Cols():
		return fmt.Errorf("%w: buildable columns %d outside [1, %d)", ErrInvalidConfig, b.BuildableColumns, b.Cols())
	case b.SupplyColumns < 1 || b.SupplyColumns > b.BuildableColumns:
		return fmt.Errorf("%w: supply columns %d outside [1, %d]", ErrInvalidConfig, b.SupplyColumns, b.BuildableColumns)
	}

	e := c.Economy
	for name, n := range map[string]int{
		"start_ammunition":     e.StartAmmunition,
		"start_production":     e.StartProduction,
		"ammunition_rate":      e.AmmunitionRate,
		"production_rate":      e.ProductionRate,
		"unit_ammunition_cost": e.UnitAmmunitionCost,
		"unit_production_cost": e.UnitProductionCost,
		"supply_cost":          e.SupplyCost,
		"defense_cost":         e.DefenseCost,
		"player_damage":        c.Combat.PlayerDamage,
		"defended_player_dmg":  c.Combat.DefendedPlayerDamage,
		"enemy_damage":         c.Combat.EnemyDamage,
	} {
		if n < 0 {
			return fmt.Errorf("%w: %s is negative", ErrInvalidConfig, name)
		}
	}
	if e.StartSupply < 1 {
		return fmt.Errorf("%w: start supply %d", ErrInvalidConfig, e.StartSupply)
	}
	if c.Combat.UnitHealth <= 0 {
		return fmt.Errorf("%w: unit health %d", ErrInvalidConfig, c.Combat.UnitHealth)
	}

	t := c.Timing
	if t.AdvanceInterval <= 0 || t.AccrualInterval <= 0 || t.MaxFrameDelta <= 0 {
		return fmt.Errorf("%w: timing intervals must be positive", ErrInvalidConfig)
	}
	return nil
}
