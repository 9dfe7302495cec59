package bundle

import "strings"

// ConfigExt is the extension of persisted bundle config files.
const ConfigExt = ".conf"

// Factory constructs a bundle with default configuration.
type Factory func() Bundle

// Types maps canonical type identifiers to factories. It replaces runtime
// class lookup by name: unknown identifiers are a lookup miss.
//
// Types is populated at startup and read afterwards; it is not safe for
// concurrent registration.
type Types struct {
	order     []string
	factories map[string]Factory
}

// NewTypes returns an empty factory registry.
func NewTypes() *Types {
	return &Types{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for typeID. Replacing keeps the
// original registration position.
func (t *Types) Register(typeID string, f Factory) {
	id := CanonicalTypeID(typeID)
	if _, ok := t.factories[id]; !ok {
		t.order = append(t.order, id)
	}
	t.factories[id] = f
}

// Has reports whether typeID has a factory.
func (t *Types) Has(typeID string) bool {
	_, ok := t.factories[CanonicalTypeID(typeID)]
	return ok
}

// New constructs a fresh bundle for typeID.
func (t *Types) New(typeID string) (Bundle, bool) {
	f, ok := t.factories[CanonicalTypeID(typeID)]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Default constructs typeID, falling back to a [Missing] placeholder.
func (t *Types) Default(typeID string) Bundle {
	if b, ok := t.New(typeID); ok {
		return b
	}
	return NewMissing(typeID)
}

// IDs returns the registered type identifiers in registration order.
func (t *Types) IDs() []string {
	return append([]string(nil), t.order...)
}

// FileName translates a type identifier to its config file name by replacing
// namespace separators with dots: `ide\bundle\Foo` -> "ide.bundle.Foo.conf".
func FileName(typeID string) string {
	return strings.ReplaceAll(CanonicalTypeID(typeID), `\`, ".") + ConfigExt
}

// TypeIDFromFileName reverses [FileName]. It reports false for names without
// the config extension.
func TypeIDFromFileName(name string) (string, bool) {
	base, ok := strings.CutSuffix(name, ConfigExt)
	if !ok || base == "" {
		return "", false
	}
	return strings.ReplaceAll(base, ".", `\`), true
}
