package reportserver

import (
	"github.com/pkg/browser"

	"github.com/Sixteen1-6/ParkingLot/internal/ports"
)

// BrowserOpener launches the host's default browser. Failures are for the
// caller to log; nothing in the serving flow depends on the launch working.
type BrowserOpener struct{}

func NewBrowserOpener() *BrowserOpener { return &BrowserOpener{} }

var _ ports.BrowserOpener = (*BrowserOpener)(nil)

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}
