package detectapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sixteen1-6/ParkingLot/internal/domain"
	"github.com/Sixteen1-6/ParkingLot/internal/infra/httpclient"
	"github.com/Sixteen1-6/ParkingLot/internal/ports"
)

// Client is the HTTP adapter for the remote detection service. The remote is
// a single-slot API: POST /detect runs inference and overwrites the "last
// annotated image" slot, GET /get_image returns whatever that slot currently
// holds. One round trip per call, no retries, no caching.
type Client struct {
	endpoint string
	exec     *httpclient.Executor
}

type Option func(*Client)

// WithExecutor replaces the default request executor.
func WithExecutor(exec *httpclient.Executor) Option {
	return func(c *Client) { c.exec = exec }
}

// NewClient validates the endpoint base URL and builds a client. The scheme
// decides secure vs plain transport, so it must be present and http(s).
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if trimmed == "" {
		return nil, &domain.OpError{
			Op:   "detectapi.new",
			Kind: domain.KindValidation,
			Err:  fmt.Errorf("endpoint URL is required: %w", domain.ErrInvalidArgument),
		}
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "detectapi.new",
			Kind: domain.KindValidation,
			Path: trimmed,
			Err:  err,
		}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &domain.OpError{
			Op:   "detectapi.new",
			Kind: domain.KindValidation,
			Path: trimmed,
			Err:  fmt.Errorf("endpoint must be an http(s) base URL: %w", domain.ErrInvalidArgument),
		}
	}

	c := &Client{
		endpoint: trimmed,
		exec:     httpclient.NewExecutor(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ ports.DetectionClient = (*Client)(nil)

// Endpoint returns the validated base URL.
func (c *Client) Endpoint() string { return c.endpoint }

// detectResponse mirrors the wire schema of POST /detect. The service emits
// both naming variants for the counts (free/openCount, occupied/occupiedCount);
// pointers let us tell "absent" from zero and prefer the canonical pair.
type detectResponse struct {
	OK            bool `json:"ok"`
	Free          *int `json:"free"`
	Occupied      *int `json:"occupied"`
	Total         *int `json:"total"`
	OpenCount     *int `json:"openCount"`
	OccupiedCount *int `json:"occupiedCount"`
}

func (r detectResponse) toStats() domain.DetectionStats {
	var s domain.DetectionStats
	switch {
	case r.OpenCount != nil:
		s.Open = *r.OpenCount
	case r.Free != nil:
		s.Open = *r.Free
	}
	switch {
	case r.Occupied != nil:
		s.Occupied = *r.Occupied
	case r.OccupiedCount != nil:
		s.Occupied = *r.OccupiedCount
	}
	if r.Total != nil {
		s.Total = *r.Total
	}
	return s
}

// Upload posts the image at imagePath as a multipart form (field "image") to
// {endpoint}/detect and returns the parsed spot counts.
func (c *Client) Upload(ctx context.Context, imagePath string) (domain.DetectionStats, error) {
	const op = "detectapi.upload"

	f, err := os.Open(imagePath)
	if err != nil {
		return domain.DetectionStats{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindValidation,
			Path: imagePath,
			Err:  err,
		}
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return domain.DetectionStats{}, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	if _, err := io.Copy(part, f); err != nil {
		return domain.DetectionStats{}, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: imagePath, Err: err}
	}
	if err := writer.Close(); err != nil {
		return domain.DetectionStats{}, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}

	reqURL := c.endpoint + "/detect"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, &body)
	if err != nil {
		return domain.DetectionStats{}, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: reqURL, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		return domain.DetectionStats{}, &domain.OpError{Op: op, Kind: domain.KindTransport, Path: reqURL, Err: err}
	}
	if resp.Status != http.StatusOK {
		return domain.DetectionStats{}, remoteStatusError(op, reqURL, resp.Status, resp.BodyBytes)
	}

	var dto detectResponse
	if err := json.Unmarshal(resp.BodyBytes, &dto); err != nil {
		return domain.DetectionStats{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindTransport,
			Path: reqURL,
			Err:  fmt.Errorf("decode detect response: %w", err),
		}
	}

	return dto.toStats(), nil
}

// Download fetches the most recent annotated image from {endpoint}/get_image.
// The body is fully accumulated before return.
func (c *Client) Download(ctx context.Context) ([]byte, error) {
	const op = "detectapi.download"

	reqURL := c.endpoint + "/get_image"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: reqURL, Err: err}
	}

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindTransport, Path: reqURL, Err: err}
	}
	if resp.Status != http.StatusOK {
		return nil, remoteStatusError(op, reqURL, resp.Status, resp.BodyBytes)
	}

	return resp.BodyBytes, nil
}

// Status probes {endpoint}/status.
func (c *Client) Status(ctx context.Context) (domain.ServiceStatus, error) {
	const op = "detectapi.status"

	reqURL := c.endpoint + "/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.ServiceStatus{}, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: reqURL, Err: err}
	}

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		return domain.ServiceStatus{}, &domain.OpError{Op: op, Kind: domain.KindTransport, Path: reqURL, Err: err}
	}
	if resp.Status != http.StatusOK {
		return domain.ServiceStatus{}, remoteStatusError(op, reqURL, resp.Status, resp.BodyBytes)
	}

	var dto struct {
		Status  string            `json:"status"`
		Model   string            `json:"model"`
		Classes map[string]string `json:"classes"`
	}
	if err := json.Unmarshal(resp.BodyBytes, &dto); err != nil {
		return domain.ServiceStatus{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindTransport,
			Path: reqURL,
			Err:  fmt.Errorf("decode status response: %w", err),
		}
	}

	return domain.ServiceStatus{Status: dto.Status, Model: dto.Model, Classes: dto.Classes}, nil
}

// remoteStatusError keeps the remote status code and raw body verbatim in the
// message so a developer can diagnose the remote without extra round trips.
func remoteStatusError(op, reqURL string, status int, body []byte) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindTransport,
		Path: reqURL,
		Err:  fmt.Errorf("%w: status %d: %s", domain.ErrRemoteStatus, status, strings.TrimSpace(string(body))),
	}
}
