package usecase

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Sixteen1-6/ParkingLot/internal/domain"
	"github.com/Sixteen1-6/ParkingLot/internal/ports"
)

// RunReport drives one invocation end to end:
//
//	Idle → Uploading → Downloading → Serving → Running
//
// Any upload or download failure lands in Failed and is terminal; nothing is
// retried. The summary callback fires after a successful render and before
// the listener binds, so the terminal shows the counts even if binding fails.
type RunReport struct {
	client   ports.DetectionClient
	renderer ports.ReportRenderer
	server   ports.ReportServer
	browser  ports.BrowserOpener

	endpoint string
	log      *zap.Logger
	summary  func(domain.DetectionStats)

	state domain.RunState
}

type RunReportOption func(*RunReport)

// WithLogger attaches a logger for state-transition output.
func WithLogger(log *zap.Logger) RunReportOption {
	return func(uc *RunReport) { uc.log = log }
}

// WithSummary registers a callback invoked with the stats once the report is
// rendered, before the listener starts.
func WithSummary(fn func(domain.DetectionStats)) RunReportOption {
	return func(uc *RunReport) { uc.summary = fn }
}

func NewRunReport(
	client ports.DetectionClient,
	renderer ports.ReportRenderer,
	server ports.ReportServer,
	browser ports.BrowserOpener,
	endpoint string,
	opts ...RunReportOption,
) *RunReport {
	uc := &RunReport{
		client:   client,
		renderer: renderer,
		server:   server,
		browser:  browser,
		endpoint: endpoint,
		log:      zap.NewNop(),
		state:    domain.StateIdle,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// State reports the current orchestration state.
func (uc *RunReport) State() domain.RunState { return uc.state }

func (uc *RunReport) transition(next domain.RunState) {
	uc.log.Info("state transition",
		zap.String("from", string(uc.state)),
		zap.String("to", string(next)))
	uc.state = next
}

func (uc *RunReport) fail(err error) error {
	uc.transition(domain.StateFailed)
	return err
}

// Execute runs the pipeline and returns the bound report handle. The handle
// keeps serving until the process exits; callers never close it outside of
// tests.
func (uc *RunReport) Execute(ctx context.Context, imagePath string) (ports.ReportHandle, error) {
	// Validate before any network activity.
	if _, err := os.Stat(imagePath); err != nil {
		return nil, uc.fail(&domain.OpError{
			Op:   "run.validate",
			Kind: domain.KindValidation,
			Path: imagePath,
			Err:  err,
		})
	}

	uc.transition(domain.StateUploading)
	stats, err := uc.client.Upload(ctx, imagePath)
	if err != nil {
		return nil, uc.fail(uc.remoteDiagnostic("upload", err))
	}
	uc.log.Info("detection complete",
		zap.Int("open", stats.Open),
		zap.Int("occupied", stats.Occupied),
		zap.Int("total", stats.Total))

	uc.transition(domain.StateDownloading)
	image, err := uc.client.Download(ctx)
	if err != nil {
		return nil, uc.fail(uc.remoteDiagnostic("download", err))
	}
	uc.log.Info("annotated image received", zap.Int("bytes", len(image)))

	doc, err := uc.renderer.Render(stats, image)
	if err != nil {
		return nil, uc.fail(err)
	}

	if uc.summary != nil {
		uc.summary(stats)
	}

	uc.transition(domain.StateServing)
	handle, err := uc.server.Serve(doc)
	if err != nil {
		return nil, uc.fail(err)
	}

	if err := uc.browser.Open(handle.URL()); err != nil {
		// Best-effort: the report stays reachable at the printed URL.
		uc.log.Warn("could not open browser", zap.String("url", handle.URL()), zap.Error(err))
	}

	uc.transition(domain.StateRunning)
	return handle, nil
}

// remoteDiagnostic points at the likely external cause: on this protocol the
// remote holds all the state, so a failed call almost always means the
// service is down or the address is wrong.
func (uc *RunReport) remoteDiagnostic(step string, err error) error {
	if domain.IsKind(err, domain.KindValidation) {
		return err
	}
	return fmt.Errorf("%s failed: %w (is the detection service running at %s?)", step, err, uc.endpoint)
}
