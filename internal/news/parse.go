package news

import (
	"regexp"
	"strings"
	"unicode"
)

// bracketCodes maps lowercased Keep a Changelog categories to the fixed
// 5-character tags used in the addon.xml news field.
var bracketCodes = map[string]string{
	"added":      "[new]",
	"fixed":      "[fix]",
	"changed":    "[upd]",
	"deprecated": "[dep]",
	"removed":    "[rem]",
	"security":   "[sec]",
}

// headingPattern matches a category heading: a `###` marker followed by a
// single word and nothing else on the line.
var headingPattern = regexp.MustCompile(`^###\s+(\w+)$`)

// Section holds the ordered bullet items for one category.
// Category is the canonical display form (e.g. "Added").
type Section struct {
	Category string
	Items    []string
}

// ChangeSet is the parsed result of a raw news document: sections in the
// order their heading first appeared, items in source order. A ChangeSet
// is never modified after Parse returns it.
type ChangeSet struct {
	Sections []Section
}

// IsEmpty returns true if no section has any items.
func (cs ChangeSet) IsEmpty() bool {
	return len(cs.Sections) == 0
}

// Count returns the total number of items across all sections.
func (cs ChangeSet) Count() int {
	n := 0
	for _, s := range cs.Sections {
		n += len(s.Items)
	}
	return n
}

// ValidCategories returns the recognized category names in their canonical
// display order.
func ValidCategories() []string {
	return []string{"Added", "Fixed", "Changed", "Deprecated", "Removed", "Security"}
}

// Parse extracts category sections from raw news text.
//
// A line is a heading when it consists of `###`, whitespace, and a single
// word. The six Keep a Changelog categories are matched case-insensitively;
// other names are carried through so they can render with a synthesized
// bracket code, but at least one recognized heading must be present.
// Content before the first heading is discarded. Within a section, only
// bullet lines (`- `, `* `, `+ `) contribute items; everything else is
// ignored. A repeated heading appends to its existing section. Categories
// left with no items are dropped, and an empty result is an error.
func Parse(raw string) (ChangeSet, error) {
	var cs ChangeSet
	index := make(map[string]int)
	recognized := false
	current := -1

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			key := strings.ToLower(m[1])
			if _, ok := bracketCodes[key]; ok {
				recognized = true
			}
			pos, ok := index[key]
			if !ok {
				cs.Sections = append(cs.Sections, Section{Category: canonicalCategory(key)})
				pos = len(cs.Sections) - 1
				index[key] = pos
			}
			current = pos
			continue
		}
		if current < 0 {
			continue
		}
		if item, ok := bulletText(line); ok {
			cs.Sections[current].Items = append(cs.Sections[current].Items, item)
		}
	}

	if !recognized {
		return ChangeSet{}, &FormatError{
			Message: "news must contain at least one Keep a Changelog section header " +
				"(### Added, ### Fixed, ### Changed, ### Deprecated, ### Removed, ### Security)",
		}
	}

	kept := cs.Sections[:0]
	for _, s := range cs.Sections {
		if len(s.Items) > 0 {
			kept = append(kept, s)
		}
	}
	cs.Sections = kept

	if cs.IsEmpty() {
		return ChangeSet{}, &FormatError{
			Message: "news sections contain no bullet items " +
				"(expected `- item` lines under ### Added, ### Fixed, etc.)",
		}
	}

	return cs, nil
}

// bulletText strips the bullet marker and surrounding whitespace from a
// line. Returns false for blank or non-bullet lines, and for bullets whose
// text is empty after trimming.
func bulletText(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if len(t) < 2 || !strings.ContainsRune("-*+", rune(t[0])) || t[1] != ' ' {
		return "", false
	}
	item := strings.TrimSpace(t[2:])
	return item, item != ""
}

// canonicalCategory converts a lowercased category name to display form:
// first letter upper, remainder lower, regardless of input casing.
func canonicalCategory(key string) string {
	if key == "" {
		return key
	}
	r := []rune(key)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// bracketCode returns the addon.xml tag for a canonical category name.
// Unknown categories synthesize a code from their first three letters.
func bracketCode(category string) string {
	key := strings.ToLower(category)
	if code, ok := bracketCodes[key]; ok {
		return code
	}
	if len(key) > 3 {
		key = key[:3]
	}
	return "[" + key + "]"
}
