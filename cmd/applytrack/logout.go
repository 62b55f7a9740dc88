package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the persisted session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(_ *cobra.Command, _ []string) error {
	ctrl, _, err := newController()
	if err != nil {
		return err
	}
	if err := ctrl.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
