package pedigree

import (
	"regexp"
	"sort"
	"strings"
)

// blockSentinel is inserted before each role keyword so a single split
// recovers the per-animal chunks. The control character cannot occur in
// normalized text.
const blockSentinel = "\x00"

var (
	reRoleWord   = regexp.MustCompile(`(?i)\b(Name|Sire|Dam)\b`)
	reRolePrefix = regexp.MustCompile(`^(?i)(Name|Sire|Dam)\b[\s:#]*`)
)

// Segment splits normalized card text into ordered per-animal blocks. A
// chunk starting with a role keyword takes that role; anything else becomes
// an unknown block. The keyword stays in the block content, since the
// extractor's label patterns anchor on it. The result is stably sorted
// subject, sire, dam, unknown, ties keeping discovery order. Text without
// any role keyword yields a single unknown block holding the whole trimmed
// input.
func Segment(text string) []Block {
	marked := reRoleWord.ReplaceAllString(text, blockSentinel+"$1")
	var blocks []Block
	for _, chunk := range strings.Split(marked, blockSentinel) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		role := RoleUnknown
		if m := reRolePrefix.FindStringSubmatch(chunk); m != nil {
			role = roleForKeyword(m[1])
		}
		blocks = append(blocks, Block{Role: role, Content: chunk})
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Role.rank() < blocks[j].Role.rank()
	})
	return blocks
}

func roleForKeyword(word string) Role {
	switch strings.ToLower(word) {
	case "name":
		return RoleSubject
	case "sire":
		return RoleSire
	case "dam":
		return RoleDam
	default:
		return RoleUnknown
	}
}
