package report

import (
	"strconv"
	"strings"

	"github.com/ShowTails/ShowTailsOCR/pedigree"
)

// TSVHeader is the fixed first row of the tabular output.
const TSVHeader = "Index\tRole\tName\tVariety\tEar\tReg\tGC\tWeight\tLegs\tBorn"

var cellFilter = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// TSV renders the records as a tab-separated table with a fixed header row.
// Every cell passes through a safety filter that folds tabs and newlines to
// spaces, so splitting a data row on tabs recovers the written values
// exactly. Zero records yield header-only output.
func TSV(records []pedigree.Record) string {
	rows := []string{TSVHeader}
	index := 0
	for _, rec := range records {
		if rec.IsEmpty() {
			continue
		}
		index++
		cells := []string{strconv.Itoa(index), rec.Role.String()}
		for _, f := range fields {
			cells = append(cells, cell(f.Get(rec)))
		}
		rows = append(rows, strings.Join(cells, "\t"))
	}
	return strings.Join(rows, "\n")
}

func cell(v string) string {
	return strings.TrimSpace(cellFilter.Replace(v))
}
