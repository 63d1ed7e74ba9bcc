package reportserver

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/Sixteen1-6/ParkingLot/internal/domain"
)

// freePort asks the kernel for an ephemeral port and releases it so the
// server under test can bind it.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}

func TestServeAnswersEveryPathAndMethod(t *testing.T) {
	doc := domain.ReportDocument("<html><body>Parking Lot Occupancy 30.0%</body></html>")

	srv := New(WithPort(freePort(t)))
	h, err := srv.Serve(doc)
	if err != nil {
		t.Fatalf("Serve: %v", err)
	}
	defer h.Close()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/anything/else"},
		{http.MethodPost, "/detect"},
		{http.MethodDelete, "/report?x=1"},
	}

	for _, c := range cases {
		t.Run(c.method+" "+c.path, func(t *testing.T) {
			req, err := http.NewRequest(c.method, h.URL()+c.path, nil)
			if err != nil {
				t.Fatal(err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Fatalf("content type = %q, want text/html", ct)
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != string(doc) {
				t.Fatalf("body differs from the rendered document")
			}
		})
	}
}

func TestServeBindConflict(t *testing.T) {
	port := freePort(t)

	// Occupy the port first.
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	srv := New(WithPort(port))
	if _, err := srv.Serve(domain.ReportDocument("x")); err == nil {
		t.Fatal("expected bind error on occupied port")
	} else if !domain.IsKind(err, domain.KindServerBind) {
		t.Fatalf("expected server_bind kind, got %v", err)
	}
}

func TestHandleURL(t *testing.T) {
	srv := New(WithPort(freePort(t)))
	h, err := srv.Serve(domain.ReportDocument("x"))
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if !strings.HasPrefix(h.URL(), "http://127.0.0.1:") {
		t.Fatalf("unexpected URL %q", h.URL())
	}
}
