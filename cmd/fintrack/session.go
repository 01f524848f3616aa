package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikkjke/finance-tracker/internal/models"
	"github.com/nikkjke/finance-tracker/internal/service"
)

func (c *cli) password(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	pw, err := readPassword(c.in, c.errOut)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}

func newLoginCmd(c *cli) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := c.password(password)
			if err != nil {
				return err
			}
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			u, err := a.Auth.Login(cmd.Context(), email, pw)
			return emit(c, u, err)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCmd(c *cli) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := c.password(password)
			if err != nil {
				return err
			}
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			u, err := a.Auth.Register(cmd.Context(), name, email, pw)
			return emit(c, u, err)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			return emitDone(c, a.Auth.Logout(cmd.Context()))
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.currentUser(cmd.Context())
			return emit(c, u, err)
		},
	}
}

func newRoleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "role <user|admin>",
		Short:     "Switch the role of the signed-in user",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.RoleUser), string(models.RoleAdmin)},
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.currentUser(cmd.Context())
			if err != nil {
				return emit(c, models.User{}, err)
			}
			u, err = c.app.Auth.SwitchRole(cmd.Context(), u, models.Role(args[0]))
			return emit(c, u, err)
		},
	}
}

func newThemeCmd(c *cli) *cobra.Command {
	get := func(cmd *cobra.Command, args []string) error {
		a, err := c.open(cmd.Context())
		if err != nil {
			return err
		}
		return emit(c, a.Theme.Get(cmd.Context()), nil)
	}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the display theme",
		Args:  cobra.NoArgs,
		RunE:  get,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show the current theme",
			Args:  cobra.NoArgs,
			RunE:  get,
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Set the theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(service.ThemeLight), string(service.ThemeDark)},
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := c.open(cmd.Context())
				if err != nil {
					return err
				}
				t, err := a.Theme.Set(cmd.Context(), service.Theme(args[0]))
				return emit(c, t, err)
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := c.open(cmd.Context())
				if err != nil {
					return err
				}
				t, err := a.Theme.Toggle(cmd.Context())
				return emit(c, t, err)
			},
		},
	)
	return cmd
}
