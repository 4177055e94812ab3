package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PropertyTag is an institutional asset tag: one uppercase letter followed
// by exactly four digits, e.g. "A0001".
type PropertyTag string

var propertyTagPattern = regexp.MustCompile(`^[A-Z][0-9]{4}$`)

// String returns the tag as a plain string.
func (t PropertyTag) String() string {
	return string(t)
}

// IsValidPropertyTag reports whether s matches the tag format.
func IsValidPropertyTag(s string) bool {
	return propertyTagPattern.MatchString(s)
}

// ParsePropertyTag validates and converts a raw string into a PropertyTag.
func ParsePropertyTag(s string) (PropertyTag, error) {
	if !IsValidPropertyTag(s) {
		return "", fmt.Errorf("invalid property tag %q: want one uppercase letter followed by four digits", s)
	}
	return PropertyTag(s), nil
}

// ParsePropertyTagRange expands a range expression into the full tag list.
// The expression is a comma-separated mix of single tags ("B0005") and
// inclusive ranges ("A0001-A0003"); range endpoints must share a letter and
// run low to high. Any invalid part fails the whole expression.
func ParsePropertyTagRange(expr string) ([]PropertyTag, error) {
	var tags []PropertyTag
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty part in tag range %q", expr)
		}

		start, end, isRange := strings.Cut(part, "-")
		if !isRange {
			tag, err := ParsePropertyTag(part)
			if err != nil {
				return nil, err
			}
			tags = append(tags, tag)
			continue
		}

		if _, err := ParsePropertyTag(start); err != nil {
			return nil, err
		}
		if _, err := ParsePropertyTag(end); err != nil {
			return nil, err
		}
		if start[0] != end[0] {
			return nil, fmt.Errorf("tag range %q spans letters", part)
		}

		from, _ := strconv.Atoi(start[1:])
		to, _ := strconv.Atoi(end[1:])
		if from > to {
			return nil, fmt.Errorf("tag range %q runs backwards", part)
		}

		letter := string(start[0])
		for n := from; n <= to; n++ {
			tags = append(tags, PropertyTag(fmt.Sprintf("%s%04d", letter, n)))
		}
	}
	return tags, nil
}
