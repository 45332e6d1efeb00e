package cmd

import (
	"fmt"

	"github.com/mallcloud/mallctl/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the signed-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfileShow(cmd, app)
		},
	}

	cmd.AddCommand(newProfileUpdateCmd(app))

	return cmd
}

func runProfileShow(cmd *cobra.Command, app *app) error {
	user, err := app.client.Profile(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}

	if err := app.session.SetProfile(cmd.Context(), user); err != nil {
		return fmt.Errorf("cache profile: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s\n", user.DisplayName())
	_, _ = fmt.Fprintf(out, "phone: %s\n", user.Phone)
	if user.Email != "" {
		_, _ = fmt.Fprintf(out, "email: %s\n", user.Email)
	}
	if user.Birthday != "" {
		_, _ = fmt.Fprintf(out, "birthday: %s\n", user.Birthday)
	}

	return nil
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var (
		nickname string
		avatar   string
		gender   int
		birthday string
		email    string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			patch := domain.ProfilePatch{}
			if cmd.Flags().Changed("nickname") {
				patch.Nickname = &nickname
			}
			if cmd.Flags().Changed("avatar") {
				patch.Avatar = &avatar
			}
			if cmd.Flags().Changed("gender") {
				patch.Gender = &gender
			}
			if cmd.Flags().Changed("birthday") {
				patch.Birthday = &birthday
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}

			if _, err := app.client.UpdateProfile(cmd.Context(), patch); err != nil {
				return fmt.Errorf("update profile: %w", err)
			}

			if err := app.session.UpdateProfile(cmd.Context(), patch); err != nil {
				return fmt.Errorf("cache profile: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
			return err
		},
	}

	cmd.Flags().StringVar(&nickname, "nickname", "", "Display name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL")
	cmd.Flags().IntVar(&gender, "gender", 0, "Gender (0 unknown, 1 male, 2 female)")
	cmd.Flags().StringVar(&birthday, "birthday", "", "Birthday (YYYY-MM-DD)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")

	return cmd
}
