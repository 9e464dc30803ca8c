package tagcheck

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shibukawa/tagcheck/matcher"
	"github.com/shibukawa/tagcheck/tokenizer"
)

// Result is the outcome of checking one document
type Result struct {
	Path    string
	Tags    int // number of tags fed to the matcher
	Verdict *matcher.Verdict
}

// Checker validates tag structure of documents. A Checker holds no state
// between documents; every call runs a fresh matcher.
type Checker struct {
	config    *Config
	tokenizer *tokenizer.TagTokenizer
	logger    *slog.Logger
}

// NewChecker creates a Checker for config. A nil logger discards logs.
func NewChecker(config *Config, logger *slog.Logger) (*Checker, error) {
	if config == nil {
		return nil, ErrNilConfig
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	dialect, err := tokenizer.DialectByName(config.Dialect)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Checker{
		config: config,
		tokenizer: tokenizer.NewTagTokenizer(dialect, tokenizer.TokenizerOptions{
			Ignore:       config.Ignore,
			MaxLineBytes: config.Limits.MaxLineBytes,
		}),
		logger: logger,
	}, nil
}

// CheckFile opens and checks the document at path
func (c *Checker) CheckFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}
	defer f.Close()

	return c.Check(f, path)
}

// Check validates the document read from r. name is used for reporting and
// to decide whether markdown code is masked.
//
// When the matcher hits an internal fault the partial result is returned
// together with the error.
func (c *Checker) Check(r io.Reader, name string) (*Result, error) {
	logger := c.logger.With("document", name, "dialect", c.tokenizer.Dialect().Name())

	src := tokenizer.Decode(r)

	if c.config.UseMarkdown(tokenizer.IsMarkdownFile(name)) {
		content, err := io.ReadAll(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
		}

		logger.Debug("masking markdown code", "bytes", len(content))
		src = bytes.NewReader(tokenizer.MaskMarkdownCode(content))
	}

	engine := matcher.NewEngine()
	result := &Result{Path: name}

	for tag, err := range c.tokenizer.Tags(src) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
		}

		result.Tags++
		engine.Observe(tag)
	}

	verdict, err := engine.Finish()
	result.Verdict = verdict

	logger.Debug("checked document",
		"tags", result.Tags,
		"defects", len(verdict.Defects),
		"errors_found", verdict.ErrorsFound)

	if err != nil {
		logger.Error("tag matcher fault", "error", err)
		return result, err
	}

	return result, nil
}
