package domain

// ReportDocument is a fully rendered, self-contained HTML page. It is
// immutable once built; the report server hands the same bytes to every
// connection, so nothing may write through this slice after rendering.
type ReportDocument []byte

// Bytes returns the raw document. Callers must treat the result as read-only.
func (d ReportDocument) Bytes() []byte { return d }
