package domain

// RunState tracks the orchestration of a single invocation. Transitions are
// strictly forward: Idle → Uploading → Downloading → Serving → Running, with
// any failure in Uploading or Downloading landing in Failed. There are no
// retries; Failed is terminal for the invocation.
type RunState string

const (
	StateIdle        RunState = "idle"
	StateUploading   RunState = "uploading"
	StateDownloading RunState = "downloading"
	StateServing     RunState = "serving"
	StateRunning     RunState = "running"
	StateFailed      RunState = "failed"
)
