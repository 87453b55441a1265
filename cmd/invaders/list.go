package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends the game can run on.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'invaders play --frontend <id>' to use one.")
}
