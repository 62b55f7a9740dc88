package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var updateFields = map[string]*string{}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

func init() {
	for _, field := range []string{"company", "role", "link", "date", "status", "location", "notes"} {
		value := new(string)
		updateFields[field] = value
		updateCmd.Flags().StringVar(value, field, "", "New value for "+field)
	}
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid application id %q", args[0])
	}

	// Only explicitly set flags go into the patch, so values can be cleared
	// by passing an empty string.
	patch := map[string]any{}
	for field, value := range updateFields {
		if cmd.Flags().Changed(field) {
			patch[field] = *value
		}
	}
	if len(patch) == 0 {
		return fmt.Errorf("nothing to update; pass at least one field flag")
	}

	ctrl, _, err := newController()
	if err != nil {
		return err
	}
	if _, err := requireMember(ctrl); err != nil {
		return err
	}

	updated, err := ctrl.UpdateApplication(context.Background(), id, patch)
	if err != nil {
		return err
	}
	fmt.Printf("Updated application %d: %s, %s (%s)\n", updated.ID, updated.Company, updated.Role, updated.Status)
	return nil
}
