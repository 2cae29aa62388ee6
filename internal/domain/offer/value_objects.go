package offer

import (
	"errors"
	"strings"
	"unicode"
)

var ErrEmptyDescription = errors.New("offer description must not be blank")

// DiscountType is kept as an open string: payloads occasionally carry types we
// do not compute (they contribute a zero discount rather than failing ingestion).
type DiscountType string

const (
	DiscountFlat       DiscountType = "FLAT"
	DiscountPercentage DiscountType = "PERCENTAGE"
)

func (t DiscountType) Known() bool {
	return t == DiscountFlat || t == DiscountPercentage
}

// Key is the deduplication identity of an offer: the description with all
// whitespace removed and lower-cased. Two descriptions differing only in
// whitespace or case collapse to the same key. This is a deliberately lossy
// heuristic carried over from the source feed; distinct offers that normalize
// identically are treated as duplicates, not as an error.
type Key string

func NewKey(description string) (Key, error) {
	var b strings.Builder
	for _, r := range description {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	if b.Len() == 0 {
		return Key(""), ErrEmptyDescription
	}
	return Key(b.String()), nil
}

func (k Key) String() string {
	return string(k)
}
