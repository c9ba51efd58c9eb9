package revision

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a ParsedRevision.
type Kind int

const (
	KindIndex Kind = iota
	KindOpaque
	KindAbsent
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindOpaque:
		return "opaque"
	case KindAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// ParsedRevision is a classified revision token.
// An Index value is a position that has not been normalized yet: negative
// values count back from the most recent commit.
type ParsedRevision struct {
	Kind  Kind
	Index int
	Text  string
}

// Index returns a ParsedRevision addressing position n.
func Index(n int) ParsedRevision {
	return ParsedRevision{Kind: KindIndex, Index: n}
}

// Opaque returns a ParsedRevision that passes s through unchanged.
func Opaque(s string) ParsedRevision {
	return ParsedRevision{Kind: KindOpaque, Text: s}
}

// Absent returns the missing right-hand side of an open range.
func Absent() ParsedRevision {
	return ParsedRevision{Kind: KindAbsent}
}

// String renders the revision for diagnostics.
func (p ParsedRevision) String() string {
	switch p.Kind {
	case KindIndex:
		return "Index(" + strconv.Itoa(p.Index) + ")"
	case KindOpaque:
		return "Opaque(" + strconv.Quote(p.Text) + ")"
	default:
		return "Absent"
	}
}

// Parse classifies a single token.
//
// "0" is always Index(0). Any other token that parses as a nonzero signed
// integer and contains neither '.' nor '_' is an Index. Everything else,
// including version tags such as "v0.2" or "0.9.0", is Opaque.
func Parse(token string) ParsedRevision {
	if token == "0" {
		return Index(0)
	}
	n, err := strconv.Atoi(token)
	if err == nil && n != 0 && !strings.ContainsAny(token, "._") {
		return Index(n)
	}
	return Opaque(token)
}
