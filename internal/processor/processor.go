package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-forge/internal/convert"
)

// Process runs the full conversion for one transcript file: read, convert,
// write the cleaned text, export the docx, run the post-convert hook, then
// archive the source.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	p.logger.Info(ctx, "Converting transcript: %s", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	res, err := convert.Convert(string(raw), p.opts)
	if errors.Is(err, convert.ErrEmptyInput) {
		p.logger.Warn(ctx, "Skipping %s: file contains no text", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	txtPath := filepath.Join(p.cfg.Paths.Output, name+".txt")
	if err := os.WriteFile(txtPath, []byte(res.Text), 0644); err != nil {
		return fmt.Errorf("write text output: %w", err)
	}
	p.logger.Info(ctx, "Wrote cleaned text: %s", txtPath)

	if p.cfg.Export.DocxEnabled() {
		docxPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
		if err := p.exporter.Export(ctx, name, res.Blocks, docxPath); err != nil {
			return fmt.Errorf("export docx: %w", err)
		}
		p.logger.Info(ctx, "Wrote document: %s", docxPath)
	}

	p.runHook(ctx, txtPath)

	if err := p.archive(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", path, err)
	}

	p.logger.Info(ctx, "Finished %s in %s (%d blocks)", name, time.Since(startTime), len(res.Blocks))
	return nil
}

// runHook executes the configured post-convert command with the text
// output path appended. Hook failures are logged, never fatal.
func (p *implProcessor) runHook(ctx context.Context, outputPath string) {
	hook := strings.TrimSpace(p.cfg.Hooks.PostConvert)
	if hook == "" {
		return
	}

	fields := strings.Fields(hook)
	args := append(fields[1:], outputPath)
	if _, err := p.executor.Execute(ctx, fields[0], args...); err != nil {
		p.logger.Warn(ctx, "Post-convert hook failed: %v", err)
		return
	}
	p.logger.Debug(ctx, "Post-convert hook done: %s %s", hook, outputPath)
}

// archive moves a processed source file out of the input directory so it
// is not picked up again.
func (p *implProcessor) archive(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	p.logger.Debug(ctx, "Archived source: %s -> %s", path, dest)
	return nil
}
