package upload

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSaveProof(t *testing.T) {
	s, err := New(t.TempDir(), "/uploads/")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("stores image and returns url", func(t *testing.T) {
		url, err := s.SaveProof([]byte("fake-png-bytes"), "image/png")
		if err != nil {
			t.Fatalf("SaveProof: %v", err)
		}
		if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
			t.Errorf("unexpected url %q", url)
		}
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		_, err := s.SaveProof([]byte("%PDF-1.4"), "application/pdf")
		if !errors.Is(err, ErrNotImage) {
			t.Errorf("expected ErrNotImage, got %v", err)
		}
	})

	t.Run("rejects oversized upload", func(t *testing.T) {
		_, err := s.SaveProof(bytes.Repeat([]byte{0xff}, MaxProofSize+1), "image/jpeg")
		if !errors.Is(err, ErrTooLarge) {
			t.Errorf("expected ErrTooLarge, got %v", err)
		}
	})
}
