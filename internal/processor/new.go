package processor

import (
	"github.com/nguyentantai21042004/transcript-forge/internal/config"
	"github.com/nguyentantai21042004/transcript-forge/internal/convert"
	"github.com/nguyentantai21042004/transcript-forge/internal/export"
	"github.com/nguyentantai21042004/transcript-forge/internal/logger"
	"github.com/nguyentantai21042004/transcript-forge/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	exporter export.Exporter
	executor executor.Executor
	logger   logger.Logger
	opts     convert.Options
}

// New creates a new Processor instance
func New(cfg *config.Config, exp export.Exporter, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		exporter: exp,
		executor: exec,
		logger:   log,
		opts: convert.Options{
			Strategy:              cfg.Pipeline.Strategy,
			DetectHeadings:        cfg.Pipeline.DetectHeadingsEnabled(),
			MarkdownHeadings:      cfg.Pipeline.MarkdownHeadings,
			SentencesPerParagraph: cfg.Pipeline.SentencesPerParagraph,
			ParagraphSpacing:      cfg.Pipeline.ParagraphSpacing,
			NumericColonHeadings:  cfg.Pipeline.NumericColonHeadings,
		},
	}
}
