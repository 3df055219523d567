package setup_test

import (
	"path/filepath"
	"testing"

	"github.com/hbjs97/shu/internal/config"
	"github.com/hbjs97/shu/internal/setup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFormRunner returns canned answers without a TUI.
type fakeFormRunner struct {
	input       *setup.Input
	confirm     bool
	gotDefaults *setup.Input
	confirmMsgs []string
}

var _ setup.FormRunner = (*fakeFormRunner)(nil)

func (f *fakeFormRunner) RunDefaultsForm(defaults *setup.Input) (*setup.Input, error) {
	f.gotDefaults = defaults
	return f.input, nil
}

func (f *fakeFormRunner) RunConfirm(message string) (bool, error) {
	f.confirmMsgs = append(f.confirmMsgs, message)
	return f.confirm, nil
}

func TestRun_FirstTimeWritesConfig(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	fr := &fakeFormRunner{
		input: &setup.Input{
			TreeExcludes: []string{".git", "dist"},
			ConcatLabel:  true,
		},
	}

	r := &setup.Runner{CfgPath: cfgPath, FormRunner: fr}
	require.NoError(t, r.Run())

	assert.Nil(t, fr.gotDefaults)
	assert.Empty(t, fr.confirmMsgs)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, []string{".git", "dist"}, cfg.Tree.Exclude)
	assert.True(t, cfg.Concat.Label)
}

func TestRun_ExistingConfigDeclined(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	orig := config.Default()
	orig.Tree.Exclude = []string{"keepme"}
	require.NoError(t, config.Save(cfgPath, orig))

	fr := &fakeFormRunner{confirm: false}
	r := &setup.Runner{CfgPath: cfgPath, FormRunner: fr}
	require.NoError(t, r.Run())

	// Declined: file untouched, form never shown.
	require.Len(t, fr.confirmMsgs, 1)
	assert.Nil(t, fr.gotDefaults)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"keepme"}, cfg.Tree.Exclude)
}

func TestRun_ExistingConfigOverwrite(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	orig := config.Default()
	orig.Chunk.DestDir = "/old"
	require.NoError(t, config.Save(cfgPath, orig))

	fr := &fakeFormRunner{
		confirm: true,
		input:   &setup.Input{ChunkDestDir: "/new"},
	}
	r := &setup.Runner{CfgPath: cfgPath, FormRunner: fr}
	require.NoError(t, r.Run())

	// Existing values are offered as form defaults.
	require.NotNil(t, fr.gotDefaults)
	assert.Equal(t, "/old", fr.gotDefaults.ChunkDestDir)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "/new", cfg.Chunk.DestDir)
}
