package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applytrack/internal/display"
	"github.com/jonathan/applytrack/internal/types"
)

var (
	loginName     string
	loginPin      string
	loginLocation string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginName, "name", "", "Member name (required)")
	loginCmd.Flags().StringVar(&loginPin, "pin", "", "Member PIN (required)")
	loginCmd.Flags().StringVar(&loginLocation, "location", "", "Current location, stored on your profile")
	_ = loginCmd.MarkFlagRequired("name")
	_ = loginCmd.MarkFlagRequired("pin")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(_ *cobra.Command, _ []string) error {
	ctrl, _, err := newController()
	if err != nil {
		return err
	}

	profile, err := ctrl.Login(context.Background(), types.LoginRequest{
		Name:     loginName,
		Pin:      loginPin,
		Location: loginLocation,
	})
	if err != nil {
		return err
	}

	display.NewPrinter(os.Stdout).PrintProfile(profile)
	return nil
}
