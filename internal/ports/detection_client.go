package ports

import (
	"context"

	"github.com/Sixteen1-6/ParkingLot/internal/domain"
)

// DetectionClient talks to the remote detection service. Upload must complete
// before Download is meaningful: the remote keeps only the most recent
// annotated result (single-slot, no job IDs), so the pair of calls is
// strictly ordered and concurrent clients race on the same slot.
type DetectionClient interface {
	// Upload posts the image at imagePath and returns the spot counts.
	Upload(ctx context.Context, imagePath string) (domain.DetectionStats, error)

	// Download fetches the most recent annotated image as a whole; the
	// returned slice is fully accumulated, never a stream.
	Download(ctx context.Context) ([]byte, error)

	// Status probes the service health endpoint.
	Status(ctx context.Context) (domain.ServiceStatus, error)
}
