package pedigree

import (
	"regexp"
	"strings"
)

// Repair rules for the label vocabulary of the known card template family.
// Each rule is independent; the rewritten label is already in canonical form,
// so running Normalize twice yields the same text.
var (
	reCRLF      = regexp.MustCompile(`\r\n?`)
	reBlankRuns = regexp.MustCompile(`\n{2,}`)
	reSpaceRuns = regexp.MustCompile(`[ \t]{2,}`)
	reVariety   = regexp.MustCompile(`(?i)[a-z]*ariety`)
	reWeight    = regexp.MustCompile(`(?i)we[il1]?ght`)
	reLegs      = regexp.MustCompile(`(?i)leg[s5]`)
	reRegLabel  = regexp.MustCompile(`(?i)\bre[gq][\s#:.,]+`)
	reGCLabel   = regexp.MustCompile(`(?i)\bgc[\s#:.,]+`)
	reEarLabel  = regexp.MustCompile(`(?i)\bear[\s#:]+`)
	reBornLabel = regexp.MustCompile(`\b(?i:born)[:\s]*([0-9OIl\-/.]+)`)
	rePoundUnit = regexp.MustCompile(`(\d)\s*(?i:[il1]b)`)
	reOunceUnit = regexp.MustCompile(`(\d)\s*(?i:[o0]z)`)
)

// Normalize rewrites a raw OCR transcription so the field labels and units of
// the card template read canonically. The rules run in a fixed order: line
// endings first, whitespace collapse next, then the label and unit repairs
// that assume collapsed whitespace. Normalize cannot fail; text without any
// recognized noise passes through unchanged.
func Normalize(raw string) string {
	s := reCRLF.ReplaceAllString(raw, "\n")
	s = reBlankRuns.ReplaceAllString(s, "\n")
	// Table borders OCR as pipes. Replaced before the space collapse so the
	// surrounding whitespace is folded in the same pass.
	s = strings.ReplaceAll(s, "|", " ")
	s = reSpaceRuns.ReplaceAllString(s, " ")
	s = reVariety.ReplaceAllString(s, "Variety")
	s = reWeight.ReplaceAllString(s, "Weight")
	s = reLegs.ReplaceAllString(s, "Legs")
	s = reRegLabel.ReplaceAllString(s, "Reg # ")
	s = reGCLabel.ReplaceAllString(s, "GC # ")
	s = reEarLabel.ReplaceAllString(s, "Ear # ")
	s = reBornLabel.ReplaceAllString(s, "Born: $1")
	s = rePoundUnit.ReplaceAllString(s, "$1 lb")
	s = reOunceUnit.ReplaceAllString(s, "$1 oz")
	return strings.TrimSpace(s)
}
