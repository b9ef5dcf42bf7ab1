package pedigree

import (
	"regexp"
	"strconv"
	"strings"
)

// yearPivot decides how a 2-digit year expands: values at or above it get a
// 19 prefix, values below it get 20.
const yearPivot = 70

var (
	dateDigitFix = strings.NewReplacer("O", "0", "I", "1", "l", "1", ".", "/", "-", "/")
	reDateShape  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)
)

// NormalizeDate coerces an OCR date token into MM/DD/YYYY. Letter-for-digit
// confusions (O, I, l) and dash or dot separators are rewritten first; a
// token that still does not look like a date comes back trimmed but
// otherwise untouched. Only the digit-group shape is checked, not calendar
// validity.
func NormalizeDate(token string) string {
	trimmed := strings.TrimSpace(token)
	m := reDateShape.FindStringSubmatch(dateDigitFix.Replace(trimmed))
	if m == nil {
		return trimmed
	}
	month, day, year := m[1], m[2], m[3]
	if len(month) == 1 {
		month = "0" + month
	}
	if len(day) == 1 {
		day = "0" + day
	}
	if len(year) == 2 {
		if v, _ := strconv.Atoi(year); v >= yearPivot {
			year = "19" + year
		} else {
			year = "20" + year
		}
	}
	return month + "/" + day + "/" + year
}
