package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sixteen1-6/ParkingLot/internal/domain"
	"github.com/Sixteen1-6/ParkingLot/internal/infra/config"
	"github.com/Sixteen1-6/ParkingLot/internal/infra/detectapi"
	"github.com/Sixteen1-6/ParkingLot/internal/infra/httpclient"
	"github.com/Sixteen1-6/ParkingLot/internal/infra/logger"
	"github.com/Sixteen1-6/ParkingLot/internal/infra/reportserver"
	"github.com/Sixteen1-6/ParkingLot/internal/ports"
	"github.com/Sixteen1-6/ParkingLot/internal/report"
	"github.com/Sixteen1-6/ParkingLot/internal/usecase"
)

func runCmd(configPath *string) *cobra.Command {
	var port int
	var timeout time.Duration

	c := &cobra.Command{
		Use:   "run <image-path> <endpoint-url>",
		Short: "Upload a lot photo, then serve the occupancy report locally",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath, endpoint := args[0], args[1]

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Report.Port = port
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Client.Timeout = timeout
			}

			handle, err := executeRun(cmd.Context(), imagePath, endpoint, cfg, cmd.OutOrStdout(), reportserver.NewBrowserOpener())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Report available at %s (Ctrl+C to stop)\n", handle.URL())

			return waitForInterrupt(cmd.OutOrStdout())
		},
	}

	c.Flags().IntVar(&port, "port", reportserver.DefaultPort, "local port for the report listener")
	c.Flags().DurationVar(&timeout, "timeout", 0, "upload/download timeout (0 = wait forever)")
	return c
}

// executeRun wires the pipeline and drives it to the Running state. The
// returned handle keeps serving until the process exits.
func executeRun(ctx context.Context, imagePath, endpoint string, cfg config.Config, out io.Writer, browser ports.BrowserOpener) (ports.ReportHandle, error) {
	client, err := newDetectionClient(endpoint, cfg.Client)
	if err != nil {
		return nil, err
	}

	srv := reportserver.New(
		reportserver.WithPort(cfg.Report.Port),
		reportserver.WithLogger(logger.L()),
	)

	uc := usecase.NewRunReport(
		client,
		report.NewRenderer(),
		srv,
		browser,
		client.Endpoint(),
		usecase.WithLogger(logger.L()),
		usecase.WithSummary(func(stats domain.DetectionStats) {
			printSummary(out, stats)
		}),
	)

	return uc.Execute(ctx, imagePath)
}

func newDetectionClient(endpoint string, cc config.ClientConfig) (*detectapi.Client, error) {
	hcfg := httpclient.DefaultConfig()
	hcfg.Timeout = cc.Timeout
	hcfg.DialTimeout = cc.DialTimeout

	exec := httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(hcfg)),
		httpclient.WithTimeout(cc.Timeout),
	)
	return detectapi.NewClient(endpoint, detectapi.WithExecutor(exec))
}

// waitForInterrupt blocks until SIGINT/SIGTERM. The report listener has no
// programmatic shutdown; killing the process is the shutdown.
func waitForInterrupt(out io.Writer) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Fprintln(out, "\nStopping.")
	return nil
}
