package qrcode

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildPayload(t *testing.T) {
	t.Parallel()

	got := BuildPayload("LEMIGAS", "3f6c1a2e-0d4b-4c8e-9f21-7a5e8b9c0d1e", "2025-03-10")
	want := "LEMIGAS-ATTENDANCE-3f6c1a2e-0d4b-4c8e-9f21-7a5e8b9c0d1e-2025-03-10"
	if got != want {
		t.Fatalf("payload = %q, want %q", got, want)
	}
}

func TestGenerate_ReturnsPNG(t *testing.T) {
	t.Parallel()

	png, err := Generate("LEMIGAS-ATTENDANCE-abc-2025-03-10")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("bukan PNG, prefix = %x", png[:8])
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	payload := BuildPayload("LEMIGAS", "user-1", "2025-03-10")
	a, err := Generate(payload)
	if err != nil {
		t.Fatalf("Generate #1: %v", err)
	}
	b, err := Generate(payload)
	if err != nil {
		t.Fatalf("Generate #2: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("PNG berbeda untuk payload yang sama")
	}
}

func TestGenerate_OversizedPayloadFails(t *testing.T) {
	t.Parallel()

	// kapasitas maksimum QR version 40 terlampaui
	if _, err := Generate(strings.Repeat("x", 8000)); err == nil {
		t.Fatal("expected error untuk payload terlalu besar")
	}
}
