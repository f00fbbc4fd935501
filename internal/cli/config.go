package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCommand(), newConfigValidateCommand(), newConfigPathCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [FILE]",
		Short: "Write the default configuration",
		Long:  "Write the default configuration to FILE, or to the configuration file in use when FILE is omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			svc := config.NewConfigServiceForPath(path)
			target := svc.Path()
			if len(args) == 1 {
				target = args[0]
			}
			if _, err := os.Stat(target); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", target)
			}

			var err error
			if target == svc.Path() {
				err = svc.Save(config.DefaultConfig())
			} else {
				err = svc.SaveToPath(config.DefaultConfig(), target)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check a configuration file",
		Long:  "Check FILE, or the configuration file in use when FILE is omitted. A missing file is an error.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			svc := config.NewConfigServiceForPath(path)

			target := svc.Path()
			if len(args) == 1 {
				target = args[0]
			}
			if _, err := svc.LoadFromPath(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", target)
			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			fmt.Fprintln(cmd.OutOrStdout(), config.NewConfigServiceForPath(path).Path())
			return nil
		},
	}
}
