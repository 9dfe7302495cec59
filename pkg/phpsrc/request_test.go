package phpsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest(`php\gui\UXLabel`, `\php\gui\UXButton`, `PHP\GUI\uxlabel`, "", `php\gui\UXButton`)
	assert.Equal(t, []string{`php\gui\UXButton`, `php\gui\UXLabel`}, req.Names())
}

func TestRequestFingerprint(t *testing.T) {
	a := NewRequest(`x\A`, `x\B`)
	b := NewRequest(`x\B`, `x\A`)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "order of construction does not matter")
	assert.NotEqual(t, a.Fingerprint(), NewRequest(`x\A`).Fingerprint())

	aliased := Request(nil).With(Import{Name: `x\A`, Alias: "Alpha"}).With(Import{Name: `x\B`})
	assert.NotEqual(t, a.Fingerprint(), aliased.Fingerprint())
}

func TestImportStatement(t *testing.T) {
	assert.Equal(t, `use a\B;`, Import{Name: `a\B`}.Statement())
	assert.Equal(t, `use a\B;`, Import{Name: `a\B`, Alias: "B"}.Statement())
	assert.Equal(t, `use a\B as C;`, Import{Name: `a\B`, Alias: "C"}.Statement())
}
