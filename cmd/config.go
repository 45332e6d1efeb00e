package cmd

import (
	"fmt"
	"os"

	"github.com/mallcloud/mallctl/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "api.base_url: %s\n", app.cfg.API.BaseURL)
			_, _ = fmt.Fprintf(out, "api.timeout_seconds: %d\n", app.cfg.API.TimeoutSeconds)
			_, _ = fmt.Fprintf(out, "storage.dir: %s\n", app.cfg.Storage.Dir)
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCmd(app))

	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists at %s", path)
			}

			if err := config.Save(app.cfg, path); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}
}
