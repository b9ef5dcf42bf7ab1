// Package report renders extracted pedigree records for the two output
// surfaces: a human-readable, markup-safe report for display and a
// tab-separated table for downstream import. Both renderers are pure
// functions over the ordered record list. A record with no extracted fields
// is skipped entirely rather than rendered as a bare role header.
package report

import (
	"strconv"
	"strings"

	"github.com/ShowTails/ShowTailsOCR/pedigree"
)

// field pairs a display label with its record accessor. The slice fixes the
// rendering order for every output surface.
var fields = []struct {
	Label string
	Get   func(pedigree.Record) string
}{
	{"Name", func(r pedigree.Record) string { return r.Name }},
	{"Variety", func(r pedigree.Record) string { return r.Variety }},
	{"Ear", func(r pedigree.Record) string { return r.Ear }},
	{"Reg", func(r pedigree.Record) string { return r.Reg }},
	{"GC", func(r pedigree.Record) string { return r.GC }},
	{"Weight", func(r pedigree.Record) string { return r.Weight }},
	{"Legs", func(r pedigree.Record) string { return r.Legs }},
	{"Born", func(r pedigree.Record) string { return r.Born }},
}

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;")

// Readable renders the records as a multi-line report suitable for block
// display in a markup context. Each record gets an indexed role header and
// one indented line per populated field; empty fields are omitted and a
// blank line separates records.
func Readable(records []pedigree.Record) string {
	var b strings.Builder
	for i, rec := range records {
		if rec.IsEmpty() {
			continue
		}
		b.WriteString(markupEscaper.Replace(headerLine(i, rec)))
		b.WriteByte('\n')
		for _, f := range fields {
			if v := f.Get(rec); v != "" {
				b.WriteString("  ")
				b.WriteString(f.Label)
				b.WriteString(": ")
				b.WriteString(markupEscaper.Replace(v))
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func headerLine(index int, rec pedigree.Record) string {
	return strconv.Itoa(index+1) + " — " + rec.Role.String()
}
