package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/ShowTails/ShowTailsOCR/pedigree"
)

// Markdown renders the records as a small markdown document: a heading per
// record and a bullet list of populated fields. It is the source format for
// HTML, and goldmark's renderer escapes field values on conversion, so raw
// OCR text can be embedded in a page safely.
func Markdown(records []pedigree.Record) string {
	var b strings.Builder
	for i, rec := range records {
		if rec.IsEmpty() {
			continue
		}
		b.WriteString("### ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(" — ")
		b.WriteString(rec.Role.String())
		b.WriteString("\n\n")
		for _, f := range fields {
			if v := f.Get(rec); v != "" {
				b.WriteString("- **")
				b.WriteString(f.Label)
				b.WriteString(":** ")
				b.WriteString(v)
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// HTML converts the records into an HTML fragment for embedding in the web
// host page.
func HTML(records []pedigree.Record) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(records)), &buf); err != nil {
		return "", fmt.Errorf("render report html: %w", err)
	}
	return buf.String(), nil
}
