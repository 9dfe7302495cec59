package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/matzehuels/prebuild/pkg/errors"
)

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in      string
		want    Environment
		wantErr bool
	}{
		{"", EnvAll, false},
		{"all", EnvAll, false},
		{"DEV", EnvDev, false},
		{" prod ", EnvProd, false},
		{"desktop", EnvDesktop, false},
		{"staging", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEnvironment(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, perrors.Is(err, perrors.ErrCodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	p, err := Open(dir)
	require.NoError(t, err)
	assert.True(t, p.Settings().UseImports(), "useImports defaults to true")
	assert.Equal(t, filepath.Join(p.Root(), "src", "app"), p.File(AppSourceDir))
	assert.Equal(t, filepath.Join(p.Root(), IDEDirName, "bundles"), p.IDEFile("bundles"))
}

func TestOpenNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := Open(file)
	require.Error(t, err)
	_, err = Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestRelative(t *testing.T) {
	p, err := Open(t.TempDir())
	require.NoError(t, err)

	rel, ok := p.Relative(p.File("src/app/Main.php"))
	assert.True(t, ok)
	assert.Equal(t, "src/app/Main.php", rel)

	_, ok = p.Relative(filepath.Dir(p.Root()))
	assert.False(t, ok)
	_, ok = p.Relative(p.Root())
	assert.False(t, ok)
}

func TestSettingsRoundTripThroughSave(t *testing.T) {
	dir := t.TempDir()
	p, err := Open(dir)
	require.NoError(t, err)

	p.Settings().SetBool(KeyUseImports, false)
	p.Settings().SetString("name", "demo")
	require.NoError(t, p.Save())

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.False(t, reopened.Settings().UseImports())
	assert.Equal(t, "demo", reopened.Settings().String("name", ""))
	assert.Equal(t, "x", reopened.Settings().String("missing", "x"))
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("useImports = = true"), 0644))

	_, err := LoadSettings(path)
	require.Error(t, err)
}

type recorder struct {
	events []string
	err    error
}

func (r *recorder) OnProjectSave(*Project) error {
	r.events = append(r.events, "save")
	return r.err
}

func (r *recorder) OnProjectPreCompile(_ *Project, env Environment, log LogFunc) error {
	r.events = append(r.events, "preCompile:"+env.String())
	log.Log("hello")
	return r.err
}

func (r *recorder) OnMakeSettings(Editor)   { r.events = append(r.events, "make") }
func (r *recorder) OnUpdateSettings(Editor) { r.events = append(r.events, "update") }

func TestLifecycleDispatch(t *testing.T) {
	p, err := Open(t.TempDir())
	require.NoError(t, err)

	first, second := &recorder{}, &recorder{}
	for _, r := range []*recorder{first, second} {
		p.Lifecycle().OnSave(r)
		p.Lifecycle().OnPreCompile(r)
		p.Lifecycle().OnSettings(r)
	}

	var lines []string
	require.NoError(t, p.Lifecycle().FirePreCompile(p, EnvDev, func(s string) { lines = append(lines, s) }))
	require.NoError(t, p.Save())
	p.Lifecycle().FireMakeSettings(nil)
	p.Lifecycle().FireUpdateSettings(nil)

	assert.Equal(t, []string{"preCompile:dev", "save", "make", "update"}, first.events)
	assert.Equal(t, first.events, second.events)
	assert.Equal(t, []string{"hello", "hello"}, lines)
}

func TestLifecycleStopsAtFirstError(t *testing.T) {
	p, err := Open(t.TempDir())
	require.NoError(t, err)

	boom := errors.New("boom")
	failing, after := &recorder{err: boom}, &recorder{}
	p.Lifecycle().OnPreCompile(failing)
	p.Lifecycle().OnPreCompile(after)

	err = p.Lifecycle().FirePreCompile(p, EnvProd, nil)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, after.events)
}
