package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var transcriptExtensions = []string{".srt", ".txt", ".vtt"}

// ProcessDir converts every transcript in dir, in name order, keeping
// going past individual failures.
func (p *implProcessor) ProcessDir(ctx context.Context, dir string) error {
	files, err := discoverTranscripts(dir)
	if err != nil {
		return fmt.Errorf("discover transcripts: %w", err)
	}

	if len(files) == 0 {
		p.logger.Info(ctx, "No transcript files found in %s", dir)
		return nil
	}

	p.logger.Info(ctx, "Found %d transcript files to convert", len(files))

	successCount := 0
	failCount := 0

	for i, path := range files {
		p.logger.Info(ctx, "[%d/%d] %s", i+1, len(files), filepath.Base(path))
		if err := p.Process(ctx, path); err != nil {
			p.logger.Error(ctx, "Failed to convert %s: %v", path, err)
			failCount++
			continue
		}
		successCount++
	}

	p.logger.Info(ctx, "Conversion complete: %d success, %d failed", successCount, failCount)
	return nil
}

// IsTranscript reports whether the file name carries a supported
// transcript extension.
func IsTranscript(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range transcriptExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsTranscript(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
