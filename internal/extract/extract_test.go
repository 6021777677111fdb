package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestFromBytesEmptyInput(t *testing.T) {
	_, err := FromBytes(nil)
	if err == nil {
		t.Fatalf("expected error for empty input")
	}
	var extractErr *Error
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
}

func TestFromBytesNotAPDF(t *testing.T) {
	_, err := FromBytes([]byte("this is plain text, not a pdf"))
	if err == nil {
		t.Fatalf("expected error for non-PDF input")
	}
	var extractErr *Error
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !strings.Contains(extractErr.Reason, "readable") {
		t.Fatalf("unexpected reason: %q", extractErr.Reason)
	}
}

func TestFromBytesTruncatedPDF(t *testing.T) {
	// A valid header with a truncated body must surface as an extraction
	// error, never a panic or empty success.
	_, err := FromBytes([]byte("%PDF-1.4\n1 0 obj\n<<"))
	if err == nil {
		t.Fatalf("expected error for truncated PDF")
	}
	var extractErr *Error
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
}
