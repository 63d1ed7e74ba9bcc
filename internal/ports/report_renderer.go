package ports

import "github.com/Sixteen1-6/ParkingLot/internal/domain"

// ReportRenderer builds the self-contained HTML report from stats and the
// annotated image bytes. Implementations must be pure: no I/O, and identical
// inputs always produce byte-identical documents.
type ReportRenderer interface {
	Render(stats domain.DetectionStats, image []byte) (domain.ReportDocument, error)
}
