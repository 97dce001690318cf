package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridtris/internal/config"
	"github.com/vovakirdan/gridtris/internal/core"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List engine presets",
	Long:  `Shows the built-in presets selectable with --variant.`,
	Run:   runVariants,
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Shows the key bindings of the selected variant, after applying the config file.`,
	RunE:  runKeys,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := config.Variants()

	maxNameLen := 4 // "Name" header
	for _, v := range variants {
		maxNameLen = max(maxNameLen, len(v.Name))
	}

	fmt.Println("Available variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, v := range variants {
		marker := ""
		if v.Name == config.DefaultVariant {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxNameLen, v.Name, v.Description, marker)
	}

	fmt.Println()
	fmt.Println("Run 'gridtris play --variant <name>' to pick one.")
}

func runKeys(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig, flagVariant)
	if err != nil {
		return err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}

	fmt.Printf("Key bindings (%s):\n\n", cfg.Variant)
	for _, a := range core.Actions {
		keys := bindings[a]
		if len(keys) == 0 {
			keys = []string{"-"}
		}
		fmt.Printf("  %-26s %s\n", a.Description(), strings.Join(keys, ", "))
	}
	fmt.Println()
	fmt.Printf("  %-26s %s\n", "Save snapshot", "ctrl+s")
	fmt.Printf("  %-26s %s\n", "Reload", "ctrl+r")
	fmt.Printf("  %-26s %s\n", "Quit", "esc, ctrl+c")
	return nil
}
