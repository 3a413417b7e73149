package reclaim

import (
	"strconv"
	"strings"
)

const (
	// SelectAll selects every listed environment.
	SelectAll = "all"

	// SelectQuit cancels the selection.
	SelectQuit = "q"
)

// Selection is the outcome of an interactive choice.
type Selection struct {
	Names     []string // Chosen names, in listing order
	Invalid   []string // Tokens that were not a valid 1-based index
	Cancelled bool
}

// ParseSelection interprets operator input against the displayed listing.
// Input is "q", "all", or 1-based indices separated by spaces or commas.
// Bad tokens are collected in Invalid and skipped; repeated indices count once.
func ParseSelection(input string, names []string) Selection {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case SelectQuit:
		return Selection{Cancelled: true}
	case SelectAll:
		return Selection{Names: append([]string(nil), names...)}
	}

	chosen := make([]bool, len(names))
	var sel Selection
	for _, tok := range strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 1 || idx > len(names) {
			sel.Invalid = append(sel.Invalid, tok)
			continue
		}
		chosen[idx-1] = true
	}
	for i, ok := range chosen {
		if ok {
			sel.Names = append(sel.Names, names[i])
		}
	}
	return sel
}
