package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/applytrack/internal/types"
)

var addInput types.ApplicationInput

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new application",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addInput.Company, "company", "", "Company name (required)")
	addCmd.Flags().StringVar(&addInput.Role, "role", "", "Role title (required)")
	addCmd.Flags().StringVar(&addInput.Link, "link", "", "Posting URL")
	addCmd.Flags().StringVar(&addInput.Date, "date", "", "Application date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addInput.Status, "status", "", "Initial pipeline stage (default: applied)")
	addCmd.Flags().StringVar(&addInput.Location, "location", "", "Job location")
	addCmd.Flags().StringVar(&addInput.Notes, "notes", "", "Free-form notes")
	_ = addCmd.MarkFlagRequired("company")
	_ = addCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	ctrl, _, err := newController()
	if err != nil {
		return err
	}
	if _, err := requireMember(ctrl); err != nil {
		return err
	}

	created, err := ctrl.CreateApplication(context.Background(), addInput)
	if err != nil {
		return err
	}
	fmt.Printf("Added application %d: %s, %s (%s)\n", created.ID, created.Company, created.Role, created.Status)
	return nil
}
