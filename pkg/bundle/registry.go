package bundle

import (
	"slices"

	"github.com/matzehuels/prebuild/pkg/project"
)

// Registry holds bundle instances keyed by (environment, type identifier).
//
// Invariant: a type identifier is registered under at most one environment.
// Each type persists a single config file, so a second bucket could not
// survive a save and reload.
//
// Registry is not safe for concurrent use; it is populated by config loading
// before any pre-compile runs.
type Registry struct {
	types   *Types
	envs    []project.Environment
	buckets map[project.Environment]*bucket
}

type bucket struct {
	order []string
	items map[string]Bundle
}

// NewRegistry creates an empty registry constructing defaults through types.
// A nil types yields an empty factory registry.
func NewRegistry(types *Types) *Registry {
	if types == nil {
		types = NewTypes()
	}
	return &Registry{
		types:   types,
		buckets: make(map[project.Environment]*bucket),
	}
}

// Types returns the factory registry.
func (r *Registry) Types() *Types { return r.types }

// Add registers b under env unless (env, b.TypeID()) is already present.
// Registering under a specific environment evicts the entry of the same type
// from every other environment; registering under EnvAll is refused while a
// specific entry exists. Reports whether b was inserted.
func (r *Registry) Add(env project.Environment, b Bundle) bool {
	id := CanonicalTypeID(b.TypeID())
	if _, ok := r.Lookup(env, id); ok {
		return false
	}
	if env.IsAll() {
		if _, ok := r.specific(id); ok {
			return false
		}
	} else {
		for other := range r.buckets {
			r.remove(other, id)
		}
	}

	bk := r.bucket(env)
	bk.order = append(bk.order, id)
	bk.items[id] = b
	return true
}

// AddType constructs typeID with defaults and registers it under env.
// It returns the registered instance: the existing one when the pair was
// already present, or the specific registration that refused an EnvAll add.
func (r *Registry) AddType(env project.Environment, typeID string) (Bundle, bool) {
	if b, ok := r.Lookup(env, typeID); ok {
		return b, false
	}
	b := r.types.Default(typeID)
	if !r.Add(env, b) {
		if existing, ok := r.specific(CanonicalTypeID(typeID)); ok {
			return existing, false
		}
		return r.Get(env, typeID), false
	}
	return b, true
}

// Environment returns the environment typeID is registered under.
func (r *Registry) Environment(typeID string) (project.Environment, bool) {
	id := CanonicalTypeID(typeID)
	for _, env := range r.envs {
		if _, ok := r.buckets[env].items[id]; ok {
			return env, true
		}
	}
	return "", false
}

// Lookup returns the bundle registered exactly under (env, typeID).
func (r *Registry) Lookup(env project.Environment, typeID string) (Bundle, bool) {
	bk, ok := r.buckets[env]
	if !ok {
		return nil, false
	}
	b, ok := bk.items[CanonicalTypeID(typeID)]
	return b, ok
}

// Get returns the bundle for typeID in env, falling back to the EnvAll
// registration and finally to a freshly constructed default. It never fails,
// and the default instance is not registered.
func (r *Registry) Get(env project.Environment, typeID string) Bundle {
	if b, ok := r.Lookup(env, typeID); ok {
		return b
	}
	if b, ok := r.Lookup(project.EnvAll, typeID); ok {
		return b
	}
	return r.types.Default(typeID)
}

// Bundles returns the bundles registered exactly under env, in registration order.
func (r *Registry) Bundles(env project.Environment) []Bundle {
	bk, ok := r.buckets[env]
	if !ok {
		return nil
	}
	out := make([]Bundle, 0, len(bk.order))
	for _, id := range bk.order {
		out = append(out, bk.items[id])
	}
	return out
}

// Environments returns the environments with at least one registration, in
// order of first registration.
func (r *Registry) Environments() []project.Environment {
	var out []project.Environment
	for _, env := range r.envs {
		if len(r.buckets[env].order) > 0 {
			out = append(out, env)
		}
	}
	return out
}

// Len returns the number of registrations across all environments.
func (r *Registry) Len() int {
	n := 0
	for _, bk := range r.buckets {
		n += len(bk.order)
	}
	return n
}

func (r *Registry) bucket(env project.Environment) *bucket {
	bk, ok := r.buckets[env]
	if !ok {
		bk = &bucket{items: make(map[string]Bundle)}
		r.buckets[env] = bk
		r.envs = append(r.envs, env)
	}
	return bk
}

func (r *Registry) remove(env project.Environment, id string) {
	bk, ok := r.buckets[env]
	if !ok {
		return
	}
	if _, ok := bk.items[id]; !ok {
		return
	}
	delete(bk.items, id)
	bk.order = slices.DeleteFunc(bk.order, func(s string) bool { return s == id })
}

// specific returns the registration of id under an environment other than
// EnvAll.
func (r *Registry) specific(id string) (Bundle, bool) {
	for _, env := range r.envs {
		if env.IsAll() {
			continue
		}
		if b, ok := r.buckets[env].items[id]; ok {
			return b, true
		}
	}
	return nil, false
}
