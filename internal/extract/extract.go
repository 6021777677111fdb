package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Error reports a PDF that could not be turned into text: malformed or
// encrypted files, or files with no extractable text layer (scanned images).
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract: %s: %v", e.Reason, e.Err)
	}
	return "extract: " + e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

// FromBytes extracts plain text from an in-memory PDF, pages concatenated in
// page order. Size limits are the caller's responsibility.
func FromBytes(data []byte) (_ string, err error) {
	if len(data) == 0 {
		return "", &Error{Reason: "empty file"}
	}

	// The pdf reader panics on some malformed inputs instead of returning
	// an error.
	defer func() {
		if rec := recover(); rec != nil {
			err = &Error{Reason: "not a readable PDF", Err: fmt.Errorf("%v", rec)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Reason: "not a readable PDF", Err: err}
	}

	var sb strings.Builder
	totalPages := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page does not fail the whole document.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &Error{Reason: "no extractable text layer"}
	}
	return text, nil
}
