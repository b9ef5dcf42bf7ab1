package pedigree

import (
	"regexp"
	"strings"
)

const (
	// nameClass is the character set a card name may contain.
	nameClass = `[A-Za-z0-9'& -]`
	// labelCutoffs ends a free-text capture at the next field label. The OCR
	// stream has no reliable delimiter between fields, so the list must grow
	// in lockstep with the label vocabulary recognized by Normalize.
	labelCutoffs = `Weight|Legs|Ear|Reg|GC|Born|Sire|Dam`
)

var (
	reName    = regexp.MustCompile(`(?i:name|rabbit|animal)[\s:]+(` + nameClass + `{3,}?)\s*(?:\b(?i:Variety|` + labelCutoffs + `)\b|$)`)
	reEar     = regexp.MustCompile(`(?i:ear\s*#)[\s:]*([A-Z0-9-]+)`)
	reReg     = regexp.MustCompile(`(?i:reg\s*#)[\s:]*([A-Z0-9-]+)`)
	reGC      = regexp.MustCompile(`\b(?i:gc\s*#)[\s:]*([A-Z0-9-]+)`)
	reVarFld  = regexp.MustCompile(`(?i:variety)[\s:]+([A-Za-z ()/-]+?)\s*(?:\b(?i:` + labelCutoffs + `)\b|$)`)
	reWgt     = regexp.MustCompile(`(?i)weight[\s:]+(\d{1,2}\s*lb\s*\d{1,2}\s*oz)`)
	reLegsFld = regexp.MustCompile(`(?i)legs?[\s:]+(\d{1,2})`)
	reBorn    = regexp.MustCompile(`(?i:born)[\s:]+([0-9OIl/.-]{6,12})`)
)

// reRoleName recovers a name written against the Sire/Dam label itself when
// the card has no separate Name field for the parent.
var reRoleName = regexp.MustCompile(`^\s*(?i:sire|dam)\s*:\s*(` + nameClass + `{3,}?)\s*(?:\b(?i:Variety|` + labelCutoffs + `)\b|$)`)

// Extract pulls the field set of one animal out of a block. Each field is
// matched independently with a tolerant pattern; a miss leaves the field
// empty. A sire or dam block without an explicit name label falls back to
// the name written directly after the role label. The born token, when
// captured, is run through NormalizeDate.
func Extract(b Block) Record {
	// Newlines fold to spaces and the edges get one pad space each so
	// boundary matches anchor the same way mid-block and at block edges.
	content := " " + strings.ReplaceAll(b.Content, "\n", " ") + " "
	rec := Record{
		Role:    b.Role,
		Name:    capture(reName, content),
		Ear:     capture(reEar, content),
		Reg:     capture(reReg, content),
		GC:      capture(reGC, content),
		Variety: capture(reVarFld, content),
		Weight:  capture(reWgt, content),
		Legs:    capture(reLegsFld, content),
		Born:    capture(reBorn, content),
	}
	if rec.Name == "" && (b.Role == RoleSire || b.Role == RoleDam) {
		rec.Name = capture(reRoleName, content)
	}
	if rec.Born != "" {
		rec.Born = NormalizeDate(rec.Born)
	}
	return rec
}

func capture(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
