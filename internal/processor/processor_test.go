package processor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/transcript-forge/internal/config"
	"github.com/nguyentantai21042004/transcript-forge/internal/export"
	"github.com/nguyentantai21042004/transcript-forge/internal/logger"
	"github.com/nguyentantai21042004/transcript-forge/pkg/executor"
)

func newTestProcessor(t *testing.T) (Processor, *config.Config) {
	t.Helper()

	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Input:    filepath.Join(root, "input"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
		},
	}
	require.NoError(t, cfg.Validate())
	require.NoError(t, os.MkdirAll(cfg.Paths.Input, 0755))

	log := logger.New("error")
	return New(cfg, export.New("", 0, "", log), executor.New(), log), cfg
}

func TestProcess(t *testing.T) {
	proc, cfg := newTestProcessor(t)

	srtPath := filepath.Join(cfg.Paths.Input, "lesson.srt")
	content := "1\n00:00:00,600 --> 00:00:05,569\nWelcome to Module 7: In this module we will cover X, Y, Z.\n"
	require.NoError(t, os.WriteFile(srtPath, []byte(content), 0644))

	require.NoError(t, proc.Process(context.Background(), srtPath))

	out, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "lesson.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "WELCOME TO MODULE 7:\n"))
	assert.NotContains(t, string(out), "-->")

	info, err := os.Stat(filepath.Join(cfg.Paths.Output, "lesson.docx"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Source is archived, not left in input.
	_, err = os.Stat(srtPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.Paths.Archived, "lesson.srt"))
	assert.NoError(t, err)
}

func TestProcessEmptyFileSkips(t *testing.T) {
	proc, cfg := newTestProcessor(t)

	path := filepath.Join(cfg.Paths.Input, "blank.srt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\n"), 0644))

	require.NoError(t, proc.Process(context.Background(), path))

	_, err := os.Stat(filepath.Join(cfg.Paths.Output, "blank.txt"))
	assert.True(t, os.IsNotExist(err), "no output should be produced for empty input")
}

func TestProcessDir(t *testing.T) {
	proc, cfg := newTestProcessor(t)

	for _, name := range []string{"b.srt", "a.srt", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.Paths.Input, name), []byte("Some sentence here.\n"), 0644))
	}

	require.NoError(t, proc.ProcessDir(context.Background(), cfg.Paths.Input))

	for _, name := range []string{"a.txt", "b.txt"} {
		_, err := os.Stat(filepath.Join(cfg.Paths.Output, name))
		assert.NoError(t, err, name)
	}
	// Unsupported extensions are ignored.
	_, err := os.Stat(filepath.Join(cfg.Paths.Output, "notes.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestIsTranscript(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a/b/c.srt", true},
		{"c.SRT", true},
		{"c.txt", true},
		{"c.vtt", true},
		{"c.mp4", false},
		{"c", false},
	}

	for _, tt := range tests {
		if got := IsTranscript(tt.path); got != tt.want {
			t.Errorf("IsTranscript(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
