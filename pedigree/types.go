package pedigree

// Role classifies which pedigree position a block of card text describes.
type Role int

const (
	// RoleSubject is the animal the card is registered to.
	RoleSubject Role = iota
	// RoleSire is the subject's father.
	RoleSire
	// RoleDam is the subject's mother.
	RoleDam
	// RoleUnknown marks text that could not be attributed to a position.
	RoleUnknown
)

// String returns the display name used by the renderers.
func (r Role) String() string {
	switch r {
	case RoleSubject:
		return "Subject"
	case RoleSire:
		return "Sire"
	case RoleDam:
		return "Dam"
	default:
		return "Unknown"
	}
}

// rank orders records subject before sire before dam before unknown.
func (r Role) rank() int {
	switch r {
	case RoleSubject:
		return 0
	case RoleSire:
		return 1
	case RoleDam:
		return 2
	default:
		return 3
	}
}

// Block is a contiguous span of normalized text believed to describe one
// animal. Blocks are transient: produced by Segment, consumed by Extract.
type Block struct {
	Role    Role
	Content string
}

// Record is the structured field set extracted from one block. Every field
// is optional; an unmatched field is the empty string, never an error. Born,
// when set, is either a well-formed MM/DD/YYYY date or the original token
// when date normalization could not recognize it.
type Record struct {
	Role    Role
	Name    string
	Ear     string
	Reg     string
	GC      string
	Variety string
	Weight  string
	Legs    string
	Born    string
}

// IsEmpty reports whether no field beyond the role was extracted.
func (r Record) IsEmpty() bool {
	return r.Name == "" && r.Ear == "" && r.Reg == "" && r.GC == "" &&
		r.Variety == "" && r.Weight == "" && r.Legs == "" && r.Born == ""
}

// Parse runs the full pipeline on a raw OCR transcription: normalize,
// segment, extract per block. The returned records keep the segmenter's
// role ordering.
func Parse(raw string) []Record {
	blocks := Segment(Normalize(raw))
	records := make([]Record, 0, len(blocks))
	for _, b := range blocks {
		records = append(records, Extract(b))
	}
	return records
}
