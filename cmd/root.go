package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mallctl",
		Short:         "Mall storefront client: browse products, manage your cart and session",
		Long:          "mallctl is a terminal client for the Mall API. It keeps a persisted shopping cart and login session on this machine and talks to the remote storefront for products, profiles and authentication.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newProfileCmd(app),
		newProductsCmd(app),
		newCartCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
