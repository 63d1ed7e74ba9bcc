package ports

// BrowserOpener opens the host's default browser at a URL. It is best-effort:
// callers may log a failure but must never treat it as fatal.
type BrowserOpener interface {
	Open(url string) error
}
