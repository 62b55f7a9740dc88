package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applytrack/internal/display"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create sample applications (only when you have none)",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctrl, _, err := newController()
	if err != nil {
		return err
	}
	if _, err := requireMember(ctrl); err != nil {
		return err
	}

	items, err := ctrl.SeedSamples(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Seeded %d sample applications\n", len(items))
	display.NewPrinter(os.Stdout).PrintApplications(items)
	return nil
}
