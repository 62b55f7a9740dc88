package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var advanceCmd = &cobra.Command{
	Use:   "advance <id>",
	Short: "Move an application to the next pipeline stage",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdvance,
}

var rejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Mark an application rejected",
	Args:  cobra.ExactArgs(1),
	RunE:  runReject,
}

func init() {
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(rejectCmd)
}

func runAdvance(_ *cobra.Command, args []string) error {
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

	ctx := context.Background()
	if _, err := ctrl.RefreshApplications(ctx); err != nil {
		return err
	}
	updated, err := ctrl.AdvanceApplication(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("Application %d is now %s\n", updated.ID, updated.Status)
	return nil
}

func runReject(_ *cobra.Command, args []string) error {
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

	updated, err := ctrl.RejectApplication(context.Background(), id)
	if err != nil {
		return err
	}
	fmt.Printf("Application %d is now %s\n", updated.ID, updated.Status)
	return nil
}
