package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sixteen1-6/ParkingLot/internal/buildinfo"
	"github.com/Sixteen1-6/ParkingLot/internal/infra/logger"
)

const defaultConfigFile = ".parkinglot.yaml"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var configPath string

	cmd := &cobra.Command{
		Use:           "parkinglot",
		Short:         "parkinglot — parking-lot occupancy reports from a detection service",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cleanup, err := logger.Setup(logger.Config{Debug: debug})
			if err != nil {
				return err
			}
			_ = cleanup // flushed on process exit; the run command blocks forever
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigFile, "path to the optional config file")

	cmd.AddCommand(runCmd(&configPath))
	cmd.AddCommand(statusCmd())
	cmd.AddCommand(versionCmd())

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
