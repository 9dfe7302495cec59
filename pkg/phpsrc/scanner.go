package phpsrc

import "strings"

// scanner walks PHP source tracking the current line.
type scanner struct {
	src  string
	pos  int
	line int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) advance(n int) {
	for ; n > 0 && s.pos < len(s.src); n-- {
		if s.src[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
}

// comment returns the length of the comment starting at pos, zero if none.
func (s *scanner) comment() int {
	rest := s.src[s.pos:]
	switch {
	case strings.HasPrefix(rest, "/*"):
		if end := strings.Index(rest[2:], "*/"); end >= 0 {
			return end + 4
		}
		return len(rest)
	case strings.HasPrefix(rest, "//"),
		strings.HasPrefix(rest, "#") && !strings.HasPrefix(rest, "#["):
		if end := strings.IndexByte(rest, '\n'); end >= 0 {
			return end
		}
		return len(rest)
	}
	return 0
}

// skip consumes whitespace and comments.
func (s *scanner) skip() {
	for !s.eof() {
		if isSpace(s.src[s.pos]) {
			s.advance(1)
			continue
		}
		n := s.comment()
		if n == 0 {
			return
		}
		s.advance(n)
	}
}

// word consumes a keyword or qualified name.
func (s *scanner) word() string {
	start := s.pos
	for !s.eof() && isWordByte(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// until consumes up to and including the first byte of terms found outside
// comments. It returns the consumed text without the terminator, with
// comments replaced by a space, and the terminator, zero at end of input.
func (s *scanner) until(terms string) (string, byte) {
	var b strings.Builder
	for !s.eof() {
		c := s.src[s.pos]
		if strings.IndexByte(terms, c) >= 0 {
			s.advance(1)
			return b.String(), c
		}
		if n := s.comment(); n > 0 {
			s.advance(n)
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(c)
		s.advance(1)
	}
	return b.String(), 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isWordByte(c byte) bool {
	return c == '_' || c == '\\' || c >= 0x80 ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
