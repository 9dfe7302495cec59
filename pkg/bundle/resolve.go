package bundle

import (
	"strings"

	"github.com/matzehuels/prebuild/pkg/project"
)

// Set is an insertion-ordered collection of bundles keyed by type identifier.
// No type identifier appears twice.
type Set struct {
	order []string
	items map[string]Bundle
}

func newSet() *Set {
	return &Set{items: make(map[string]Bundle)}
}

func (s *Set) add(b Bundle) bool {
	id := CanonicalTypeID(b.TypeID())
	if _, ok := s.items[id]; ok {
		return false
	}
	s.order = append(s.order, id)
	s.items[id] = b
	return true
}

// Has reports whether typeID is a member.
func (s *Set) Has(typeID string) bool {
	_, ok := s.items[CanonicalTypeID(typeID)]
	return ok
}

// Get returns the member for typeID.
func (s *Set) Get(typeID string) (Bundle, bool) {
	b, ok := s.items[CanonicalTypeID(typeID)]
	return b, ok
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.order) }

// TypeIDs returns member type identifiers in insertion order.
func (s *Set) TypeIDs() []string { return append([]string(nil), s.order...) }

// Bundles returns members in insertion order.
func (s *Set) Bundles() []Bundle {
	out := make([]Bundle, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Edge is a dependency between two members: From depends on To.
type Edge struct {
	From string
	To   string
}

// Edges returns the dependency edges among members, ordered by member then
// declaration.
func (s *Set) Edges() []Edge {
	var edges []Edge
	for _, id := range s.order {
		for _, dep := range s.items[id].Dependencies() {
			if dep = CanonicalTypeID(dep); s.Has(dep) {
				edges = append(edges, Edge{From: id, To: dep})
			}
		}
	}
	return edges
}

// UseImports aggregates member imports in first-seen order without duplicates.
func (s *Set) UseImports() []string {
	seen := make(map[string]bool)
	var out []string
	for _, b := range s.Bundles() {
		for _, imp := range b.UseImports() {
			if !seen[imp] {
				seen[imp] = true
				out = append(out, imp)
			}
		}
	}
	return out
}

// Resolver expands registry contents into per-environment sets.
type Resolver struct {
	reg *Registry
}

// NewResolver returns a resolver over reg.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Registry returns the underlying registry.
func (r *Resolver) Registry() *Registry { return r.reg }

// ResolveAll returns every bundle active in env together with everything
// reachable through dependency edges.
//
// Seeds are the bundles registered under env followed, when env is not
// EnvAll, by those registered under EnvAll. Each seed's dependencies are
// expanded depth-first before the seed itself is inserted, so a seed always
// follows its direct dependencies. A fetched dependency is inserted before its
// own dependencies are expanded and is never expanded twice, which terminates
// cycles. Resolution never fails.
func (r *Resolver) ResolveAll(env project.Environment) *Set {
	set := newSet()

	seeds := r.reg.Bundles(env)
	if !env.IsAll() {
		seeds = append(seeds, r.reg.Bundles(project.EnvAll)...)
	}

	for _, b := range seeds {
		r.expand(set, env, b.Dependencies())
		set.add(b)
	}
	return set
}

// frame is one level of the explicit dependency stack.
type frame struct {
	deps []string
	next int
}

func (r *Resolver) expand(set *Set, env project.Environment, deps []string) {
	if len(deps) == 0 {
		return
	}
	stack := []frame{{deps: deps}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.deps) {
			stack = stack[:len(stack)-1]
			continue
		}
		dep := top.deps[top.next]
		top.next++

		if set.Has(dep) {
			continue
		}
		b := r.reg.Get(env, dep)
		if !set.add(b) {
			continue
		}
		if children := b.Dependencies(); len(children) > 0 {
			stack = append(stack, frame{deps: children})
		}
	}
}

// FindImport looks up a use-import by its short class name, ignoring case,
// across the jar bundles active in every environment.
func (r *Resolver) FindImport(shortName string) (string, bool) {
	for _, b := range r.ResolveAll(project.EnvAll).Bundles() {
		if _, ok := b.(*JarBundle); !ok {
			continue
		}
		for _, imp := range b.UseImports() {
			if strings.EqualFold(ShortName(imp), shortName) {
				return imp, true
			}
		}
	}
	return "", false
}
