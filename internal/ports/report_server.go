package ports

import "github.com/Sixteen1-6/ParkingLot/internal/domain"

// ReportHandle is a bound, serving report listener.
type ReportHandle interface {
	// URL returns the address the report is reachable at (http://host:port).
	URL() string

	// Close stops the listener. The normal flow never calls this; it exists
	// so tests can release the port.
	Close() error
}

// ReportServer binds a local listener and serves one immutable document to
// every request. Binding is all-or-nothing: a port already in use fails
// immediately with a server_bind error.
type ReportServer interface {
	Serve(doc domain.ReportDocument) (ReportHandle, error)
}
