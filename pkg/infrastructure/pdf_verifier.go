package infrastructure

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFVerifier re-opens rendered bytes with a PDF parser so a truncated or
// malformed document is caught before it is handed to the user.
type PDFVerifier struct{}

func NewPDFVerifier() PDFVerifier { return PDFVerifier{} }

// Verify returns the page count of data.
func (PDFVerifier) Verify(data []byte) (n int, err error) {
	if len(data) == 0 {
		return 0, errors.New("empty document")
	}
	// the parser panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("parse pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("parse pdf: %w", err)
	}
	return r.NumPage(), nil
}
