package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/auth"
	"github.com/finbook-dev/finbook/internal/normalize"
	"github.com/finbook-dev/finbook/internal/store"
)

func newRegisterCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, registry, err := openRegistry(cmd)
			if err != nil {
				return err
			}

			account, err := auth.NewService(registry).Register(username, password)
			if err != nil {
				return err
			}
			if err := store.Save(cfg.DataFile, registry); err != nil {
				return err
			}
			if err := saveSession(cfg.SessionFile, normalize.Key(account.Username)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s.\n", account.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "username (required)")
	cmd.Flags().StringVar(&password, "password", "", "password, at least 4 characters (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an existing user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, registry, err := openRegistry(cmd)
			if err != nil {
				return err
			}

			account, err := auth.NewService(registry).Login(username, password)
			if err != nil {
				return err
			}
			if err := saveSession(cfg.SessionFile, normalize.Key(account.Username)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s.\n", account.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "username (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := clearSession(cfg.SessionFile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
