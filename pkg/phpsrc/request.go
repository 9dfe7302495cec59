package phpsrc

import (
	"slices"
	"strings"

	"github.com/matzehuels/prebuild/pkg/cache"
)

// Import is one class import.
type Import struct {
	// Name is the fully-qualified class name without a leading separator.
	Name string
	// Alias is the local name, empty for the short class name.
	Alias string
}

// LocalName returns the name the class is visible under in the importing file.
func (i Import) LocalName() string {
	if i.Alias != "" {
		return i.Alias
	}
	return shortName(i.Name)
}

// Statement renders the use declaration.
func (i Import) Statement() string {
	if i.Alias != "" && i.Alias != shortName(i.Name) {
		return "use " + i.Name + " as " + i.Alias + ";"
	}
	return "use " + i.Name + ";"
}

// Request is a set of class imports ordered by name. Build it with
// [NewRequest].
type Request []Import

// NewRequest builds a request from fully-qualified class names. Names are
// deduplicated ignoring case, as PHP class names are case-insensitive.
func NewRequest(names ...string) Request {
	var req Request
	for _, n := range names {
		req = req.With(Import{Name: n})
	}
	return req
}

// With returns the request extended by imp unless a class of the same name is
// already requested.
func (r Request) With(imp Import) Request {
	imp.Name = strings.TrimPrefix(strings.TrimSpace(imp.Name), `\`)
	imp.Alias = strings.TrimSpace(imp.Alias)
	if imp.Name == "" {
		return r
	}
	i, found := slices.BinarySearchFunc(r, imp, compareImports)
	if found {
		return r
	}
	return slices.Insert(slices.Clone(r), i, imp)
}

// Names returns the requested class names.
func (r Request) Names() []string {
	out := make([]string, len(r))
	for i, imp := range r {
		out[i] = imp.Name
	}
	return out
}

// Fingerprint is a stable digest of the request.
func (r Request) Fingerprint() string {
	var b strings.Builder
	for _, imp := range r {
		b.WriteString(imp.Name)
		b.WriteByte(' ')
		b.WriteString(imp.Alias)
		b.WriteByte('\n')
	}
	return cache.Hash([]byte(b.String()))
}

func compareImports(a, b Import) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

func shortName(name string) string {
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		return name[i+1:]
	}
	return name
}
