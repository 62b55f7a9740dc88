package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applytrack/internal/display"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(_ *cobra.Command, _ []string) error {
	ctrl, _, err := newController()
	if err != nil {
		return err
	}
	profile, err := ctrl.Restore()
	if err != nil {
		return err
	}
	display.NewPrinter(os.Stdout).PrintProfile(profile)
	return nil
}
