package revision

// Sequence is an ordered, read-only list of commit identifiers.
// Position 0 is the earliest commit and Len()-1 the most recent.
type Sequence struct {
	ids []string
}

// NewSequence builds a Sequence from ids ordered oldest first.
// The slice is copied so later changes by the caller are not observed.
func NewSequence(ids []string) Sequence {
	owned := make([]string, len(ids))
	copy(owned, ids)
	return Sequence{ids: owned}
}

// Len returns the number of commits.
func (s Sequence) Len() int {
	return len(s.ids)
}

// At returns the commit at storage position i, which must be in [0, Len()).
func (s Sequence) At(i int) string {
	return s.ids[i]
}

// IDs returns a copy of the identifiers, oldest first.
func (s Sequence) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Lookup maps a possibly negative index onto the sequence.
// Negative n addresses Len()+n, so -1 is the most recent commit.
func (s Sequence) Lookup(n int) (string, bool) {
	if n < 0 {
		n += len(s.ids)
	}
	if n < 0 || n >= len(s.ids) {
		return "", false
	}
	return s.ids[n], true
}

// ResolutionKind describes how a ParsedRevision was resolved.
type ResolutionKind int

const (
	// ResolvedCommit means an index selected a commit in the sequence.
	ResolvedCommit ResolutionKind = iota
	// ResolvedPassthrough means an opaque token was returned unchanged.
	ResolvedPassthrough
	// ResolvedEmpty is the absent side of an open range.
	ResolvedEmpty
	// ResolvedNotFound means an index fell outside the sequence.
	ResolvedNotFound
)

// String returns a string representation of the resolution kind.
func (k ResolutionKind) String() string {
	switch k {
	case ResolvedCommit:
		return "commit"
	case ResolvedPassthrough:
		return "passthrough"
	case ResolvedEmpty:
		return "empty"
	case ResolvedNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving one ParsedRevision.
// Text is empty for ResolvedEmpty and ResolvedNotFound.
type Resolution struct {
	Kind ResolutionKind
	Text string
}

// Found reports whether the resolution produced something printable.
func (r Resolution) Found() bool {
	return r.Kind != ResolvedNotFound
}

// Resolve turns pr into a commit identifier using seq.
// Opaque revisions are never looked up.
func Resolve(seq Sequence, pr ParsedRevision) Resolution {
	switch pr.Kind {
	case KindIndex:
		id, ok := seq.Lookup(pr.Index)
		if !ok {
			return Resolution{Kind: ResolvedNotFound}
		}
		return Resolution{Kind: ResolvedCommit, Text: id}
	case KindOpaque:
		return Resolution{Kind: ResolvedPassthrough, Text: pr.Text}
	default:
		return Resolution{Kind: ResolvedEmpty}
	}
}

// TokenResult is the displayable outcome of resolving a user-supplied token.
type TokenResult struct {
	Token string
	Range *RangeExpression
	// Parts holds one resolution for a plain token, or left and right for a range.
	Parts []Resolution
	Line  string
	// Printed is false when the token resolved to nothing and must be omitted.
	Printed bool
}

// ResolveToken resolves a raw token, which may be a single revision or a range.
//
// A plain token that resolves to NotFound is not printed. Inside a range each
// side that is absent or not found renders as the empty string, so "3.."
// becomes "<id>.." and the range itself is always printed.
func ResolveToken(seq Sequence, token string) TokenResult {
	expr, isRange := Split(token)
	if !isRange {
		res := Resolve(seq, Parse(token))
		return TokenResult{
			Token:   token,
			Parts:   []Resolution{res},
			Line:    res.Text,
			Printed: res.Found(),
		}
	}

	left := Resolve(seq, expr.Left)
	right := Resolve(seq, expr.Right)
	return TokenResult{
		Token:   token,
		Range:   &expr,
		Parts:   []Resolution{left, right},
		Line:    left.Text + expr.Separator + right.Text,
		Printed: true,
	}
}

// ResolveTokens resolves each token independently, preserving input order.
func ResolveTokens(seq Sequence, tokens []string) []TokenResult {
	results := make([]TokenResult, 0, len(tokens))
	for _, token := range tokens {
		results = append(results, ResolveToken(seq, token))
	}
	return results
}
