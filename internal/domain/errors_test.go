package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("connection refused")
	err := &OpError{
		Op:   "detectapi.upload",
		Kind: KindTransport,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindTransport {
		t.Fatalf("expected kind %s, got %s", KindTransport, got.Kind)
	}
}

func TestOpErrorMessageIncludesPathAndCause(t *testing.T) {
	err := &OpError{
		Op:   "cli.run",
		Kind: KindValidation,
		Path: "/tmp/lot.jpg",
		Err:  ErrNotFound,
	}

	msg := err.Error()
	for _, want := range []string{"cli.run", "validation", "/tmp/lot.jpg", "not found"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "reportserver.serve", Kind: KindServerBind}

	if !IsKind(err, KindServerBind) {
		t.Fatalf("expected IsKind to match server_bind")
	}
	if IsKind(err, KindTransport) {
		t.Fatalf("did not expect IsKind to match transport")
	}

	wrapped := fmt.Errorf("starting report: %w", err)
	if !IsKind(wrapped, KindServerBind) {
		t.Fatalf("expected IsKind to see through wrapping")
	}
	if IsKind(errors.New("plain"), KindServerBind) {
		t.Fatalf("plain errors have no kind")
	}
}
