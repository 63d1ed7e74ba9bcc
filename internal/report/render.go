// Package report renders detection results into a self-contained HTML page.
package report

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"strconv"

	"github.com/Sixteen1-6/ParkingLot/internal/domain"
	"github.com/Sixteen1-6/ParkingLot/internal/ports"
)

// The whole page is inlined: styles in a <style> block and the annotated
// image as a base64 data URI, so the served document needs no other assets.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Parking Lot Report</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 960px; color: #222; }
h1 { font-size: 1.4rem; }
table.stats { border-collapse: collapse; margin: 1rem 0; }
table.stats td, table.stats th { border: 1px solid #ccc; padding: 0.4rem 1rem; text-align: right; }
img.annotated { max-width: 100%; border: 1px solid #ccc; }
</style>
</head>
<body>
<h1>Parking Lot Occupancy</h1>
<table class="stats">
<tr><th>Open</th><th>Occupied</th><th>Total</th><th>Occupancy</th></tr>
<tr><td>{{.Open}}</td><td>{{.Occupied}}</td><td>{{.Total}}</td><td>{{.Percent}}%</td></tr>
</table>
<img class="annotated" alt="annotated parking lot" src="data:image/jpeg;base64,{{.ImageB64}}">
</body>
</html>
`

var page = template.Must(template.New("report").Parse(pageTemplate))

type pageData struct {
	Open     int
	Occupied int
	Total    int
	Percent  string
	ImageB64 string
}

// Renderer builds report documents. It is stateless and safe for concurrent
// use; Render does no I/O and is deterministic.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

var _ ports.ReportRenderer = (*Renderer)(nil)

// Render combines stats and annotated image bytes into the final document.
// Counts are formatted exactly as received, including nonsensical values;
// validating them is not this layer's job.
func (r *Renderer) Render(stats domain.DetectionStats, image []byte) (domain.ReportDocument, error) {
	data := pageData{
		Open:     stats.Open,
		Occupied: stats.Occupied,
		Total:    stats.Total,
		Percent:  FormatPercent(stats),
		ImageB64: base64.StdEncoding.EncodeToString(image),
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, &domain.OpError{Op: "report.render", Kind: domain.KindExecution, Err: err}
	}
	return domain.ReportDocument(buf.Bytes()), nil
}

// FormatPercent renders the occupancy rate with one decimal ("30.0").
func FormatPercent(stats domain.DetectionStats) string {
	return strconv.FormatFloat(stats.OccupancyPercent(), 'f', 1, 64)
}
