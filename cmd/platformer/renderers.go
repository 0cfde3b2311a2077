package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/registry"
)

var renderersCmd = &cobra.Command{
	Use:   "renderers",
	Short: "List available renderers",
	Long:  `Shows the renderers that can be selected with --render.`,
	Args:  cobra.NoArgs,
	Run:   runRenderers,
}

func runRenderers(cmd *cobra.Command, args []string) {
	renderers := registry.List()

	if len(renderers) == 0 {
		fmt.Println("No renderers available.")
		return
	}

	fmt.Println("Available renderers:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, r := range renderers {
		if len(r.Name) > maxNameLen {
			maxNameLen = len(r.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, r := range renderers {
		fmt.Printf("  %-*s  %s\n", maxNameLen, r.Name, r.Title)
	}

	fmt.Println()
	fmt.Println("Run 'platformer <tiles> <start> --render <name>' to use one.")
}
