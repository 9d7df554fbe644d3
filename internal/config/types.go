// internal/config/types.go
package config

import "time"

// Config is the runtime configuration of a session. Zero values are never used
// directly: Load always starts from Default.
type Config struct {
	Board   BoardConfig   `yaml:"board" mapstructure:"board"`
	Economy EconomyConfig `yaml:"economy" mapstructure:"economy"`
	Combat  CombatConfig  `yaml:"combat" mapstructure:"combat"`
	Timing  TimingConfig  `yaml:"timing" mapstructure:"timing"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Debug   DebugConfig   `yaml:"debug" mapstructure:"debug"`
	Seed    int64         `yaml:"seed" mapstructure:"seed"`
}

type BoardConfig struct {
	Width            int `yaml:"width" mapstructure:"width"`
	Height           int `yaml:"height" mapstructure:"height"`
	CellSize         int `yaml:"cell_size" mapstructure:"cell_size"`
	BuildableColumns int `yaml:"buildable_columns" mapstructure:"buildable_columns"`
	SupplyColumns    int `yaml:"supply_columns" mapstructure:"supply_columns"`
}

// Cols returns the number of grid columns.
func (b BoardConfig) Cols() int { return b.Width / b.CellSize }

// Rows returns the number of grid rows.
func (b BoardConfig) Rows() int { return b.Height / b.CellSize }

type EconomyConfig struct {
	StartSupply        int `yaml:"start_supply" mapstructure:"start_supply"`
	StartAmmunition    int `yaml:"start_ammunition" mapstructure:"start_ammunition"`
	StartProduction    int `yaml:"start_production" mapstructure:"start_production"`
	AmmunitionRate     int `yaml:"ammunition_rate" mapstructure:"ammunition_rate"`
	ProductionRate     int `yaml:"production_rate" mapstructure:"production_rate"`
	UnitAmmunitionCost int `yaml:"unit_ammunition_cost" mapstructure:"unit_ammunition_cost"`
	UnitProductionCost int `yaml:"unit_production_cost" mapstructure:"unit_production_cost"`
	SupplyCost         int `yaml:"supply_cost" mapstructure:"supply_cost"`
	DefenseCost        int `yaml:"defense_cost" mapstructure:"defense_cost"`
}

type CombatConfig struct {
	UnitHealth           int `yaml:"unit_health" mapstructure:"unit_health"`
	PlayerDamage         int `yaml:"player_damage" mapstructure:"player_damage"`
	DefendedPlayerDamage int `yaml:"defended_player_damage" mapstructure:"defended_player_damage"`
	EnemyDamage          int `yaml:"enemy_damage" mapstructure:"enemy_damage"`
}

// TimingConfig intervals are measured in simulated time.
type TimingConfig struct {
	AdvanceInterval time.Duration `yaml:"advance_interval" mapstructure:"advance_interval"`
	AccrualInterval time.Duration `yaml:"accrual_interval" mapstructure:"accrual_interval"`
	MaxFrameDelta   time.Duration `yaml:"max_frame_delta" mapstructure:"max_frame_delta"`
}

type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	File       string `yaml:"file" mapstructure:"file"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type DebugConfig struct {
	Addr    string `yaml:"addr" mapstructure:"addr"`
	Metrics bool   `yaml:"metrics" mapstructure:"metrics"`
}

// Default returns the configuration of the classic board.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:            ScreenWidth,
			Height:           ScreenHeight,
			CellSize:         CellSize,
			BuildableColumns: BuildableColumns,
			SupplyColumns:    SupplyColumns,
		},
		Economy: EconomyConfig{
			StartSupply:        StartSupply,
			StartAmmunition:    StartAmmunition,
			StartProduction:    StartProduction,
			AmmunitionRate:     AmmunitionRate,
			ProductionRate:     ProductionRate,
			UnitAmmunitionCost: UnitAmmunitionCost,
			UnitProductionCost: UnitProductionCost,
			SupplyCost:         SupplyCost,
			DefenseCost:        DefenseCost,
		},
		Combat: CombatConfig{
			UnitHealth:           UnitHealth,
			PlayerDamage:         PlayerDamage,
			DefendedPlayerDamage: DefendedPlayerDamage,
			EnemyDamage:          EnemyDamage,
		},
		Timing: TimingConfig{
			AdvanceInterval: time.Duration(AdvanceInterval * float64(time.Second)),
			AccrualInterval: time.Duration(AccrualInterval * float64(time.Second)),
			MaxFrameDelta:   time.Duration(MaxDeltaTime * float64(time.Second)),
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
		Debug: DebugConfig{
			Addr:    "localhost:6060",
			Metrics: true,
		},
	}
}
