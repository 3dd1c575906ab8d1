package party

import (
	"regexp"
	"strings"
)

var (
	partySepRe = regexp.MustCompile(`\s*;\s*`)
	fieldSepRe = regexp.MustCompile(`\s*,\s*`)
)

// ParseList splits a free-text party list into records.
//
// Parties are separated by semicolons and fields by commas, with any
// surrounding whitespace ignored:
//
//	"Party A, 33; Party B, 22, #99FF99"
//
// Blank entries (for example after a trailing semicolon) are skipped. Field
// validation is left to [Normalize].
func ParseList(s string) []Record {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var recs []Record
	for _, entry := range partySepRe.Split(s, -1) {
		if entry == "" {
			continue
		}
		recs = append(recs, Record(fieldSepRe.Split(entry, -1)))
	}
	return recs
}
