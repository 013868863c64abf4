package main

import "github.com/spf13/cobra"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "profilecheck",
		Short:         "Validate user profile records",
		Long:          `Validate user profile records (id, name, email, password, confirmPassword, salary, phoneNumber, website) read from JSON or YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(c *cobra.Command, _ []string) {
			_ = c.Help()
		},
	}
	root.AddCommand(newValidateCmd(a), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			_, err := c.OutOrStdout().Write([]byte("profilecheck " + version + "\n"))
			return err
		},
	}
}
