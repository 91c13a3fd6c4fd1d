// Package cmd wires up the command-line interface for running simulated
// dungeon runs.
package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dungeonpilot/pkg/game/bestiary"
	"dungeonpilot/pkg/game/config"
	"dungeonpilot/pkg/game/sim"
)

var (
	flagSeed    int64
	flagFloors  int
	flagTicks   int
	flagConfig  string
	flagRender  bool
	flagVerbose bool
)

// rootCmd runs one autonomous dungeon crawl
var rootCmd = &cobra.Command{
	Use:   "dungeonpilot",
	Short: "An autonomous agent that crawls a generated dungeon",
	Long: `dungeonpilot generates a small multi-floor dungeon and lets a
utility-driven agent play it: exploring, fighting, looting and hunting the
quest item, one decision per turn.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cmd.Flags().Changed("floors") {
			cfg.Sim.Floors = flagFloors
		}
		if cmd.Flags().Changed("ticks") {
			cfg.Sim.MaxTicks = flagTicks
		}

		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		log := zap.NewNop()
		if flagVerbose {
			if log, err = zap.NewDevelopment(); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
		}
		defer log.Sync()

		bst := bestiary.New(sim.SpeciesStats())
		if cfg.Sim.BestiaryPath != "" {
			if bst, err = bestiary.Load(cfg.Sim.BestiaryPath); err != nil {
				return fmt.Errorf("load bestiary: %w", err)
			}
		}

		engine := sim.NewEngine(cfg, bst, rand.New(rand.NewSource(seed)), log)

		var renderer *sim.Renderer
		var onTick func(e *sim.Engine)
		if flagRender {
			renderer = sim.NewRenderer()
			onTick = func(e *sim.Engine) { renderer.RenderFrame(e) }
		}

		outcome := engine.Run(onTick)
		fmt.Printf("outcome: %s after %d ticks (seed %d)\n", outcome, engine.TickCount(), seed)
		return nil
	},
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "world seed (0 picks one from the clock)")
	rootCmd.Flags().IntVar(&flagFloors, "floors", 3, "number of dungeon floors")
	rootCmd.Flags().IntVar(&flagTicks, "ticks", 300, "maximum turns before the run times out")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.Flags().BoolVar(&flagRender, "render", false, "print the map after every turn")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every decision")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
