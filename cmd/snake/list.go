package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List variants and difficulty presets",
	Long:  `Display the registered game variants and the configured difficulty presets.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		fail("%v", err)
	}
	defer s.close()

	games := registry.List()

	fmt.Println("Variants:")
	fmt.Println()

	// Find max ID length for alignment
	maxIDLen := 2 // "ID"
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	fmt.Println()
	for _, p := range s.cfg.Presets() {
		marker := " "
		if p.Name == s.cfg.Difficulty.Default {
			marker = "*"
		}
		fmt.Printf("  %s %-8s %v\n", marker, p.Name, p.Interval)
	}
	fmt.Println()
	fmt.Println("Use 'snake play --difficulty <name>' to skip the picker.")
}
