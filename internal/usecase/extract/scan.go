package extract

import "strings"

// Delims describes a bracket pair and the lexical context it lives in.
// A zero Comment or Quote disables that context.
type Delims struct {
	Open    byte
	Close   byte
	Comment byte
	Quote   byte
}

var (
	// Parens is the declarative syntax: "(...)" with ";" line comments.
	Parens = Delims{Open: '(', Close: ')', Comment: ';'}

	// Brackets and Braces are JSON-like payloads: no comments, quoted strings.
	Brackets = Delims{Open: '[', Close: ']', Quote: '"'}
	Braces   = Delims{Open: '{', Close: '}', Quote: '"'}
)

// Class is the lexical class of one byte.
type Class int

const (
	Code Class = iota
	Comment
	// CommentEnd is the line break that terminates a line comment.
	CommentEnd
	Quoted
)

// Scanner classifies bytes one at a time.
//
// Iterating bytes is safe for the ASCII delimiters involved: UTF-8 never
// reuses ASCII bytes inside multi-byte sequences.
type Scanner struct {
	d Delims

	inComment bool
	inString  bool
	escape    bool
}

func NewScanner(d Delims) *Scanner {
	return &Scanner{d: d}
}

// Next consumes b and reports its class.
func (s *Scanner) Next(b byte) Class {
	switch {
	case s.inComment:
		if b == '\n' {
			s.inComment = false
			return CommentEnd
		}
		return Comment
	case s.inString:
		if s.escape {
			s.escape = false
		} else if b == '\\' {
			s.escape = true
		} else if b == s.d.Quote {
			s.inString = false
		}
		return Quoted
	}

	if s.d.Comment != 0 && b == s.d.Comment {
		s.inComment = true
		return Comment
	}
	if s.d.Quote != 0 && b == s.d.Quote {
		s.inString = true
		return Quoted
	}
	return Code
}

// StripComments removes every line comment, keeping the line breaks.
func StripComments(text string) string {
	if !strings.ContainsRune(text, rune(Parens.Comment)) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	sc := NewScanner(Parens)
	for i := 0; i < len(text); i++ {
		switch sc.Next(text[i]) {
		case Code, CommentEnd:
			sb.WriteByte(text[i])
		}
	}
	return sb.String()
}

// IndexOutsideComments returns the offset of the first occurrence of marker
// at or after from that does not start inside a comment, or -1.
func IndexOutsideComments(text, marker string, from int) int {
	if marker == "" {
		return -1
	}
	sc := NewScanner(Parens)
	for i := 0; i < len(text); i++ {
		if sc.Next(text[i]) != Code || i < from {
			continue
		}
		if strings.HasPrefix(text[i:], marker) {
			return i
		}
	}
	return -1
}

// Group is one balanced top-level group and its offsets in the scanned text.
type Group struct {
	Text  string
	Start int
	End   int // exclusive
}

// Groups splits text into its top-level balanced groups.
//
// Closers seen at depth zero are ignored. A line break that terminates a
// comment resets the depth to zero and discards the group being collected,
// so a group whose closer only appears after a commented line is skipped.
func Groups(text string, d Delims) []Group {
	var (
		out   []Group
		depth int
		start = -1
	)

	sc := NewScanner(d)
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch sc.Next(b) {
		case CommentEnd:
			depth = 0
			start = -1
		case Code:
			switch b {
			case d.Open:
				if depth == 0 {
					start = i
				}
				depth++
			case d.Close:
				if depth == 0 {
					continue
				}
				depth--
				if depth == 0 && start >= 0 {
					out = append(out, Group{Text: text[start : i+1], Start: start, End: i + 1})
					start = -1
				}
			}
		}
	}
	return out
}

// Tokens splits a group interior on whitespace.
func Tokens(group string) []string {
	return strings.Fields(Interior(group))
}

// Interior trims one outer delimiter pair, if present.
func Interior(group string) string {
	g := strings.TrimSpace(group)
	if len(g) >= 2 {
		return g[1 : len(g)-1]
	}
	return g
}
