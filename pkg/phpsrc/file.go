package phpsrc

import (
	"strings"
)

const openTag = "<?php"

// Kind distinguishes the three forms of use declaration.
type Kind int

const (
	KindClass Kind = iota
	KindFunction
	KindConst
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindConst:
		return "const"
	default:
		return "class"
	}
}

// Use is one imported name. A grouped or comma-separated declaration yields
// one Use per name.
type Use struct {
	Kind Kind
	// Name is fully qualified, without a leading separator.
	Name  string
	Alias string
	// Line is the 1-based line of the use keyword.
	Line int
}

// LocalName returns the alias, else the last name segment.
func (u Use) LocalName() string {
	if u.Alias != "" {
		return u.Alias
	}
	return shortName(u.Name)
}

// File is the parsed header of a PHP source file. Line numbers are 1-based;
// zero means absent.
type File struct {
	OpenTagLine   int
	Namespace     string
	NamespaceLine int
	Uses          []Use
	// HeaderEnd is the line of the first statement after the header, zero
	// when the file ends inside the header.
	HeaderEnd int

	src string
	// anchor is the byte offset just past the statement new imports follow,
	// -1 without an open tag.
	anchor int
}

// Parse parses the header of src. It never fails: content it does not
// understand ends the header.
func Parse(src []byte) *File {
	f := &File{src: string(src)}
	f.parse()
	return f
}

// Bytes returns the current content.
func (f *File) Bytes() []byte { return []byte(f.src) }

func (f *File) String() string { return f.src }

// HasImport reports whether a class import of name exists, ignoring case.
func (f *File) HasImport(name string) bool {
	name = strings.TrimPrefix(name, `\`)
	for _, u := range f.Uses {
		if u.Kind == KindClass && strings.EqualFold(u.Name, name) {
			return true
		}
	}
	return false
}

// AddImports merges the requested class imports that are missing. An import
// is skipped when the class is already imported under any alias or when its
// local name is already taken. It returns the added class names in request
// order. Files without an open tag are left alone.
func (f *File) AddImports(req Request, preserveLines bool) []string {
	if f.anchor < 0 || len(req) == 0 {
		return nil
	}

	have := make(map[string]bool)
	taken := make(map[string]bool)
	for _, u := range f.Uses {
		if u.Kind != KindClass {
			continue
		}
		have[strings.ToLower(u.Name)] = true
		taken[strings.ToLower(u.LocalName())] = true
	}

	var added []Import
	for _, imp := range req {
		name, local := strings.ToLower(imp.Name), strings.ToLower(imp.LocalName())
		if have[name] || taken[local] {
			continue
		}
		have[name], taken[local] = true, true
		added = append(added, imp)
	}
	if len(added) == 0 {
		return nil
	}

	at := f.anchor
	if !preserveLines {
		if at = f.ownLineOffset(); at < 0 {
			return nil
		}
	}

	var b strings.Builder
	if preserveLines {
		for _, imp := range added {
			b.WriteByte(' ')
			b.WriteString(imp.Statement())
		}
	} else {
		nl := f.newline()
		for _, imp := range added {
			b.WriteString(nl)
			b.WriteString(imp.Statement())
		}
	}
	f.src = f.src[:at] + b.String() + f.src[at:]
	f.parse()

	names := make([]string, len(added))
	for i, imp := range added {
		names[i] = imp.Name
	}
	return names
}

func (f *File) newline() string {
	if strings.Contains(f.src, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// ownLineOffset returns where own-line imports are inserted: the end of the
// anchor line, or the end of a block comment that opens on that line and
// spans further lines. It returns -1 when that comment is unterminated.
func (f *File) ownLineOffset() int {
	s := &scanner{src: f.src, pos: f.anchor}
	for !s.eof() {
		c := f.src[s.pos]
		if c == ' ' || c == '\t' {
			s.pos++
			continue
		}
		if c == '\r' || c == '\n' {
			return f.lineEnd(s.pos)
		}
		n := s.comment()
		if n == 0 || !strings.HasPrefix(f.src[s.pos:], "/*") {
			return f.lineEnd(s.pos)
		}
		text := f.src[s.pos : s.pos+n]
		if !strings.HasSuffix(text, "*/") || n < 4 {
			return -1
		}
		s.pos += n
		if strings.IndexByte(text, '\n') >= 0 {
			return s.pos
		}
	}
	return len(f.src)
}

// lineEnd returns the offset of the line break ending the line containing
// offset, or the end of the content.
func (f *File) lineEnd(offset int) int {
	i := strings.IndexByte(f.src[offset:], '\n')
	if i < 0 {
		return len(f.src)
	}
	end := offset + i
	if end > offset && f.src[end-1] == '\r' {
		end--
	}
	return end
}

func (f *File) parse() {
	f.OpenTagLine, f.Namespace, f.NamespaceLine, f.Uses, f.HeaderEnd = 0, "", 0, nil, 0
	f.anchor = -1

	tag := strings.Index(f.src, openTag)
	if tag < 0 {
		return
	}
	s := &scanner{src: f.src, line: 1}
	s.advance(tag)
	f.OpenTagLine = s.line
	s.advance(len(openTag))
	f.anchor = s.pos

	for {
		s.skip()
		if s.eof() {
			return
		}
		line := s.line
		switch strings.ToLower(s.word()) {
		case "namespace":
			if f.NamespaceLine != 0 {
				// a second namespace starts a new scope
				f.HeaderEnd = line
				return
			}
			text, _ := s.until(";{")
			f.Namespace = strings.TrimPrefix(strings.TrimSpace(text), `\`)
			f.NamespaceLine = line
			if len(f.Uses) == 0 {
				f.anchor = s.pos
			}
		case "declare":
			s.until(";")
			if f.NamespaceLine == 0 && len(f.Uses) == 0 {
				f.anchor = s.pos
			}
		case "use":
			text, term := s.until(";")
			if term != ';' {
				f.HeaderEnd = line
				return
			}
			f.Uses = append(f.Uses, parseUse(text, line)...)
			f.anchor = s.pos
		default:
			f.HeaderEnd = line
			return
		}
	}
}

func parseUse(text string, line int) []Use {
	kind, text := cutKind(strings.TrimSpace(text), KindClass)

	open := strings.IndexByte(text, '{')
	if open < 0 {
		var uses []Use
		for _, item := range strings.Split(text, ",") {
			if u, ok := parseUseItem(item, "", kind, line); ok {
				uses = append(uses, u)
			}
		}
		return uses
	}

	prefix := strings.TrimRight(strings.TrimSpace(text[:open]), `\`)
	body := strings.TrimSpace(text[open+1:])
	body = strings.TrimSuffix(body, "}")

	var uses []Use
	for _, item := range strings.Split(body, ",") {
		itemKind, item := cutKind(strings.TrimSpace(item), kind)
		if u, ok := parseUseItem(item, prefix, itemKind, line); ok {
			uses = append(uses, u)
		}
	}
	return uses
}

func parseUseItem(item, prefix string, kind Kind, line int) (Use, bool) {
	fields := strings.Fields(item)
	if len(fields) == 0 {
		return Use{}, false
	}
	u := Use{Kind: kind, Name: strings.TrimPrefix(fields[0], `\`), Line: line}
	if prefix != "" {
		u.Name = strings.TrimPrefix(prefix, `\`) + `\` + u.Name
	}
	if len(fields) == 3 && strings.EqualFold(fields[1], "as") {
		u.Alias = fields[2]
	}
	return u, true
}

// cutKind strips a leading "function" or "const" modifier.
func cutKind(text string, def Kind) (Kind, string) {
	for _, k := range []Kind{KindFunction, KindConst} {
		kw := k.String()
		if len(text) > len(kw) && strings.EqualFold(text[:len(kw)], kw) && isSpace(text[len(kw)]) {
			return k, strings.TrimSpace(text[len(kw):])
		}
	}
	return def, text
}
