// cmd/game/simulate.go
package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"sand-line/internal/app"
	"sand-line/internal/event"
	"sand-line/internal/logs"
	"sand-line/internal/sim"
)

var (
	simSeconds float64
	simStep    float64
	simSpeed   float64
	simCheck   bool
	simQuiet   bool
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the game headless with a scripted player",
		Long: `Drive the simulation without a window. A scripted player buys
supply, blocks rows under attack and fortifies the front line.
With --check every tick is validated against the board invariants.`,
		RunE: runSimulate,
	}
	cmd.Flags().Float64Var(&simSeconds, "seconds", 300, "Wall seconds to simulate")
	cmd.Flags().Float64Var(&simStep, "step", 1.0/60, "Seconds per tick")
	cmd.Flags().Float64Var(&simSpeed, "speed", 1, "Speed multiplier (0.2, 1 or 5)")
	cmd.Flags().BoolVar(&simCheck, "check", false, "Validate invariants after every tick")
	cmd.Flags().BoolVarP(&simQuiet, "quiet", "q", false, "Only print the summary line")
	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Log.File = ""
	if err := logs.Init("sandline-sim", cfg.Log); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logs.Sync() }()

	if !simQuiet {
		titleColor.Printf("Sand Line simulation, seed %d\n", cfg.Seed)
		infoColor.Printf("%.0fs at %gx, step %.4fs\n\n", simSeconds, simSpeed, simStep)
	}

	g := app.NewGame(cfg)
	rep, runErr := sim.Run(g, sim.NewAutoplayer(), sim.Options{
		Seconds: simSeconds,
		Step:    simStep,
		Speed:   simSpeed,
		Check:   simCheck,
	})
	if !simQuiet {
		printEvents(rep)
		printFinal(rep)
	}
	if runErr != nil {
		return runErr
	}
	successColor.Printf("%d ticks, %d capitulations, final status %s\n", rep.Ticks, rep.Capitulations, rep.Status)
	return nil
}

func printEvents(rep sim.Report) {
	types := make([]event.EventType, 0, len(rep.Events))
	for t := range rep.Events {
		types = append(types, t)
	}
	slices.Sort(types)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Event", "Count"}),
	)
	for _, t := range types {
		_ = table.Append([]string{string(t), strconv.Itoa(rep.Events[t])})
	}
	_ = table.Render()
	fmt.Println()
}

func printFinal(rep sim.Report) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Supply", "Ammunition", "Production", "Units", "Enemies", "Status"}),
	)
	_ = table.Append([]string{
		strconv.Itoa(rep.Final.Supply),
		strconv.Itoa(rep.Final.Ammunition),
		strconv.Itoa(rep.Final.Production),
		strconv.Itoa(rep.PlayerUnits),
		strconv.Itoa(rep.Enemies),
		rep.Status.String(),
	})
	_ = table.Render()
	fmt.Println()
}
