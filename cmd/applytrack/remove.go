package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid application id %q", args[0])
	}

	ctrl, _, err := newController()
	if err != nil {
		return err
	}
	if _, err := requireMember(ctrl); err != nil {
		return err
	}

	if err := ctrl.DeleteApplication(context.Background(), id); err != nil {
		return err
	}
	fmt.Printf("Removed application %d\n", id)
	return nil
}
