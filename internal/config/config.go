package config

import "fmt"

type Config struct {
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Paths       PathsConfig       `yaml:"paths"`
	Export      ExportConfig      `yaml:"export"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Hooks       HooksConfig       `yaml:"hooks"`
}

type PipelineConfig struct {
	// Strategy selects the classification pipeline: "sections" buffers
	// sentences under colon-derived headings, "flat" tags each fragment
	// through the ordered pattern rules.
	Strategy              string `yaml:"strategy"`
	DetectHeadings        *bool  `yaml:"detect_headings"`
	MarkdownHeadings      bool   `yaml:"markdown_headings"`
	SentencesPerParagraph int    `yaml:"sentences_per_paragraph"`
	ParagraphSpacing      int    `yaml:"paragraph_spacing"`
	NumericColonHeadings  bool   `yaml:"numeric_colon_headings"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type ExportConfig struct {
	Docx         *bool  `yaml:"docx"`
	Font         string `yaml:"font"`
	FontSize     int    `yaml:"font_size"`
	HeadingColor string `yaml:"heading_color"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type HooksConfig struct {
	// PostConvert is an optional command run after each conversion with
	// the text output path appended as its last argument.
	PostConvert string `yaml:"post_convert"`
}

// DetectHeadingsEnabled defaults to true when unset in the config file.
func (p PipelineConfig) DetectHeadingsEnabled() bool {
	return p.DetectHeadings == nil || *p.DetectHeadings
}

// DocxEnabled defaults to true when unset in the config file.
func (e ExportConfig) DocxEnabled() bool {
	return e.Docx == nil || *e.Docx
}

func (c *Config) Validate() error {
	switch c.Pipeline.Strategy {
	case "":
		c.Pipeline.Strategy = "sections"
	case "sections", "flat":
	default:
		return fmt.Errorf("pipeline.strategy must be \"sections\" or \"flat\", got %q", c.Pipeline.Strategy)
	}

	if c.Pipeline.SentencesPerParagraph < 0 {
		return fmt.Errorf("pipeline.sentences_per_paragraph must be positive")
	}
	if c.Pipeline.SentencesPerParagraph == 0 {
		c.Pipeline.SentencesPerParagraph = 1
	}
	if c.Pipeline.ParagraphSpacing < 1 || c.Pipeline.ParagraphSpacing > 2 {
		c.Pipeline.ParagraphSpacing = 1
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}

	if c.Export.FontSize < 0 {
		return fmt.Errorf("export.font_size must be positive")
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
