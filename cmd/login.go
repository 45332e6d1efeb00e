package cmd

import (
	"errors"
	"fmt"

	"github.com/mallcloud/mallctl/internal/adapters/api"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var (
		phone string
		code  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a phone number and SMS code",
		Long:  "Sign in to the mall. Without --code an SMS verification code is requested for the phone number; run the command again with --code once it arrives.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if phone == "" {
				return errors.New("--phone is required")
			}

			if code == "" {
				if err := app.client.SendSMSCode(cmd.Context(), phone, api.SMSPurposeLogin); err != nil {
					return fmt.Errorf("send sms code: %w", err)
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Verification code sent to %s. Run 'mallctl login --phone %s --code <code>' to finish.\n", phone, phone)
				return err
			}

			result, err := app.client.LoginByPhone(cmd.Context(), phone, code)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			if err := app.session.Login(cmd.Context(), result.Token, result.User); err != nil {
				return fmt.Errorf("store session: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", result.User.DisplayName())
			return err
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&code, "code", "", "SMS verification code")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return err
		},
	}
}
