package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReadLineTrims(t *testing.T) {
	r := NewReader(strings.NewReader("  hello world  \n"))

	line, err := r.ReadLine(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "hello world" {
		t.Errorf("ReadLine() = %q, want %q", line, "hello world")
	}
}

func TestReadLineWithoutTrailingNewline(t *testing.T) {
	r := NewReader(strings.NewReader("last line"))

	line, err := r.ReadLine(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "last line" {
		t.Errorf("ReadLine() = %q, want %q", line, "last line")
	}
}

func TestReadLineCanceledContext(t *testing.T) {
	// A pipe-like reader that never produces data.
	blocked := &blockingReader{}
	r := NewReader(blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.ReadLine(ctx)
	if !errors.Is(err, ErrInputCancelled) {
		t.Errorf("expected ErrInputCancelled, got %v", err)
	}
}

type blockingReader struct{}

func (b *blockingReader) Read(_ []byte) (int, error) {
	select {} // blocks forever
}
