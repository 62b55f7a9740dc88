package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applytrack/internal/display"
)

var (
	listStatus string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your applications",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "all", "Filter by pipeline stage (wishlist, applied, interview, offer, rejected, all)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by text match over company, role, notes, location")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	ctrl, _, err := newController()
	if err != nil {
		return err
	}
	if _, err := requireMember(ctrl); err != nil {
		return err
	}

	if _, err := ctrl.RefreshApplications(context.Background()); err != nil {
		return err
	}
	ctrl.SetStatusFilter(listStatus)
	ctrl.SetTextFilter(listSearch)

	printer := display.NewPrinter(os.Stdout)
	printer.PrintBoard(ctrl.Applications())
	printer.PrintApplications(ctrl.FilteredApplications())
	return nil
}
