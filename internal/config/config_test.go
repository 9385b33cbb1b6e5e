package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pmprep/internal/bank"
	"github.com/abhisek/pmprep/internal/session"
)

func TestParseDefaultsOnEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, string(session.ModePractice), cfg.Mode)
	assert.Equal(t, 10, cfg.Size)
}

func TestParseFullDocument(t *testing.T) {
	doc := []byte(`
bank_json: banks/pmp.json
bank_csv: banks/pmp.csv
mode: exam
size: 25
domains: [People, Agile]
seed: 42
fully_deterministic: true
feedback_pause_ms: 800
export_dir: /tmp/exports
`)
	cfg, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "exam", cfg.Mode)
	assert.Equal(t, 25, cfg.Size)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)

	sc := cfg.SessionConfig()
	assert.True(t, sc.Seeded)
	assert.Equal(t, int64(42), sc.Seed)
	assert.Equal(t, session.ModeExam, sc.Mode)
	assert.Equal(t, []bank.Domain{bank.DomainPeople, bank.DomainAgile}, sc.Domains)
	assert.True(t, sc.FullyDeterministic)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "bnak_json: oops.json\n"},
		{"bad mode", "mode: speedrun\n"},
		{"negative size", "size: -3\n"},
		{"unknown domain", "domains: [Scrum]\n"},
		{"negative pause", "feedback_pause_ms: -1\n"},
		{"second document", "size: 5\n---\nsize: 6\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Size)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pmprep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Size)
}
