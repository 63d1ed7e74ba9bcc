package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sixteen1-6/ParkingLot/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Report.Port != 8077 {
		t.Fatalf("default port = %d, want 8077", cfg.Report.Port)
	}
	if cfg.Client.Timeout != 0 {
		t.Fatalf("default timeout must be zero, got %v", cfg.Client.Timeout)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "parkinglot.yaml")
	body := `
report:
  port: 9900
client:
  timeout: 45s
  dial_timeout: 2s
`
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Report.Port != 9900 {
		t.Errorf("port = %d, want 9900", cfg.Report.Port)
	}
	if cfg.Client.Timeout != 45*time.Second {
		t.Errorf("timeout = %v, want 45s", cfg.Client.Timeout)
	}
	if cfg.Client.DialTimeout != 2*time.Second {
		t.Errorf("dial timeout = %v, want 2s", cfg.Client.DialTimeout)
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "parkinglot.yaml")
	if err := os.WriteFile(p, []byte("report:\n  port: 8200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Report.Port != 8200 {
		t.Errorf("port = %d, want 8200", cfg.Report.Port)
	}
	if cfg.Client.DialTimeout != 5*time.Second {
		t.Errorf("dial timeout default lost: %v", cfg.Client.DialTimeout)
	}
}

func TestLoadMalformed(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad yaml", "report: [=:"},
		{"bad duration", "client:\n  timeout: soon\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "parkinglot.yaml")
			if err := os.WriteFile(p, []byte(c.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(p); err == nil {
				t.Fatal("expected error")
			} else if !domain.IsKind(err, domain.KindValidation) {
				t.Fatalf("expected validation kind, got %v", err)
			}
		})
	}
}
