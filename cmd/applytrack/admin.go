package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applytrack/internal/display"
	"github.com/jonathan/applytrack/internal/session"
	"github.com/jonathan/applytrack/internal/types"
)

var (
	adminName  string
	adminToken string

	adminUserInput types.AdminUserInput
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer members and the audit log",
	Long:  "Admin portal commands. Each invocation authenticates with the admin account name and token; the token is held in memory only and never persisted.",
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List members with application counts",
	RunE:  runAdminUsers,
}

var adminSaveUserCmd = &cobra.Command{
	Use:   "save-user",
	Short: "Create a member or update location/PIN of an existing one",
	RunE:  runAdminSaveUser,
}

var adminRemoveUserCmd = &cobra.Command{
	Use:   "remove-user <name>",
	Short: "Delete a member and all their applications",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminRemoveUser,
}

var adminEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the audit log, newest first",
	RunE:  runAdminEvents,
}

var adminClearEventsCmd = &cobra.Command{
	Use:   "clear-events",
	Short: "Empty the audit log",
	RunE:  runAdminClearEvents,
}

func init() {
	adminCmd.PersistentFlags().StringVar(&adminName, "name", "", "Admin account name (default from config)")
	adminCmd.PersistentFlags().StringVar(&adminToken, "token", "", "Admin token (or APPLYTRACK_ADMIN_TOKEN)")

	adminSaveUserCmd.Flags().StringVar(&adminUserInput.Name, "user", "", "Member name (required)")
	adminSaveUserCmd.Flags().StringVar(&adminUserInput.Location, "location", "", "Member location")
	adminSaveUserCmd.Flags().StringVar(&adminUserInput.Pin, "pin", "", "Member PIN (required for new members; resets their token)")
	_ = adminSaveUserCmd.MarkFlagRequired("user")

	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminSaveUserCmd)
	adminCmd.AddCommand(adminRemoveUserCmd)
	adminCmd.AddCommand(adminEventsCmd)
	adminCmd.AddCommand(adminClearEventsCmd)
	rootCmd.AddCommand(adminCmd)
}

// adminSession builds a controller in the admin portal and authenticates it.
func adminSession(ctx context.Context) (*session.Controller, error) {
	ctrl, cfg, err := newController()
	if err != nil {
		return nil, err
	}

	name := adminName
	if name == "" {
		name = cfg.AdminName
	}
	if name == "" {
		name = "trackeradmin"
	}
	token := adminToken
	if token == "" {
		token = cfg.AdminToken
	}

	if err := ctrl.SwitchPortal(session.PortalAdmin); err != nil {
		return nil, err
	}
	if err := ctrl.AdminLogin(ctx, name, token); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func runAdminUsers(_ *cobra.Command, _ []string) error {
	ctrl, err := adminSession(context.Background())
	if err != nil {
		return err
	}
	display.NewPrinter(os.Stdout).PrintAdminUsers(ctrl.AdminUsersSnapshot())
	return nil
}

func runAdminSaveUser(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	ctrl, err := adminSession(ctx)
	if err != nil {
		return err
	}
	saved, err := ctrl.AdminSaveUser(ctx, adminUserInput)
	if err != nil {
		return err
	}
	fmt.Printf("Saved member %s\n", saved.Name)
	return nil
}

func runAdminRemoveUser(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	ctrl, err := adminSession(ctx)
	if err != nil {
		return err
	}
	if err := ctrl.AdminRemoveUser(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed member %s\n", args[0])
	return nil
}

func runAdminEvents(_ *cobra.Command, _ []string) error {
	ctrl, err := adminSession(context.Background())
	if err != nil {
		return err
	}
	display.NewPrinter(os.Stdout).PrintAdminEvents(ctrl.AdminEventLog())
	return nil
}

func runAdminClearEvents(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	ctrl, err := adminSession(ctx)
	if err != nil {
		return err
	}
	if err := ctrl.AdminClearEvents(ctx); err != nil {
		return err
	}
	fmt.Println("Audit log cleared.")
	return nil
}
