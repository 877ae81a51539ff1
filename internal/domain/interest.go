package domain

import (
	"strings"

	"github.com/goccy/go-json"
)

// InterestSet is an immutable, de-duplicated set of interest tags that
// remembers first-seen order. The zero value is an empty set.
//
// The catalog stores interests as a comma-separated string ("beach,culture");
// ParseInterests turns that into a set and String turns it back.
type InterestSet struct {
	order   []string
	members map[string]struct{}
}

// ParseInterests parses a comma-separated tag list. Surrounding whitespace is
// trimmed, blank entries are skipped and repeats are ignored.
func ParseInterests(csv string) InterestSet {
	return NewInterestSet(strings.Split(csv, ",")...)
}

// NewInterestSet builds a set from tags using the same rules as ParseInterests.
func NewInterestSet(tags ...string) InterestSet {
	s := InterestSet{members: make(map[string]struct{}, len(tags))}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := s.members[tag]; dup {
			continue
		}
		s.members[tag] = struct{}{}
		s.order = append(s.order, tag)
	}
	return s
}

// Has reports whether tag is a member of the set. Matching is exact.
func (s InterestSet) Has(tag string) bool {
	_, ok := s.members[tag]
	return ok
}

// Len returns the number of distinct tags.
func (s InterestSet) Len() int {
	return len(s.order)
}

// Tags returns the tags in first-seen order. The slice is a copy.
func (s InterestSet) Tags() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// String returns the comma-separated storage form.
func (s InterestSet) String() string {
	return strings.Join(s.order, ",")
}

// MarshalJSON encodes the set as a JSON array of tags.
func (s InterestSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tags())
}

// UnmarshalJSON accepts either a JSON array of tags or a comma-separated string.
func (s *InterestSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err == nil {
		*s = NewInterestSet(tags...)
		return nil
	}
	var csv string
	if err := json.Unmarshal(data, &csv); err != nil {
		return err
	}
	*s = ParseInterests(csv)
	return nil
}
