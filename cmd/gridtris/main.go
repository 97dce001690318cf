// gridtris plays a sideways-falling block puzzle on a contribution calendar.
//
// Usage:
//
//	gridtris play [profile-url]  - Play on a profile page, a saved page or a blank grid
//	gridtris menu [profile-url]  - Pick a variant, play, and pick again
//	gridtris serve               - Start SSH server for remote play
//	gridtris variants            - List engine presets
//	gridtris keys                - Show key bindings
//
// Global flags:
//
//	--variant <name>  - Engine preset: classic, flashing
//	--config <path>   - Config file overlaid on the preset
//	--seed <value>    - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagVariant string
	flagConfig  string
	flagSeed    int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridtris",
	Short: "Sideways Tetris on a contribution calendar",
	Long: `gridtris turns the contribution calendar of a profile page into a
Tetris board. Pieces fall toward the left; a column that fills up is removed
and the stack to its right slides over.

Available commands:
  play      - Play in the terminal
  menu      - Pick a variant interactively, then play
  serve     - Start SSH server for remote play
  variants  - List engine presets
  keys      - Show key bindings

Examples:
  gridtris play https://github.com/octocat
  gridtris play --page ./profile.html --variant classic
  gridtris serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Engine preset: classic, flashing (default from config, else flashing)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(keysCmd)
}
