package revision

// Range separators.
const (
	SeparatorTwoDot   = ".."
	SeparatorThreeDot = "..."
)

// RangeExpression is a token split at a two- or three-dot separator.
type RangeExpression struct {
	Left      ParsedRevision
	Separator string
	Right     ParsedRevision
}

// Split detects range syntax in token.
//
// The separator is the first run of exactly two or three dots bounded by
// non-dot characters or the string edges. A single dot inside a tag such as
// "v0.2" never qualifies, and neither does a run of four or more dots. The
// second return value is false when token is not a range.
func Split(token string) (RangeExpression, bool) {
	start, length := findSeparator(token)
	if length == 0 {
		return RangeExpression{}, false
	}

	leftText := token[:start]
	rightText := token[start+length:]

	expr := RangeExpression{
		Left:      Parse(leftText),
		Separator: token[start : start+length],
		Right:     Absent(),
	}
	if rightText != "" {
		expr.Right = Parse(rightText)
	}
	return expr, true
}

// findSeparator returns the offset and length of the first qualifying dot run.
// A length of zero means no run qualifies.
func findSeparator(token string) (int, int) {
	i := 0
	for i < len(token) {
		if token[i] != '.' {
			i++
			continue
		}
		j := i
		for j < len(token) && token[j] == '.' {
			j++
		}
		if n := j - i; n == 2 || n == 3 {
			return i, n
		}
		i = j
	}
	return 0, 0
}
