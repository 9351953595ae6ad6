package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultLaTeXTimeout bounds one pdflatex invocation.
	DefaultLaTeXTimeout = 30 * time.Second
	// DefaultPandocTimeout bounds one pandoc invocation.
	DefaultPandocTimeout = 30 * time.Second

	// logTailBytes caps how much of the compiler log an error carries.
	logTailBytes = 5000
	// maxErrorLines caps how many log error lines go into the message.
	maxErrorLines = 10
)

// Options configures a Compiler. Zero values take the defaults.
type Options struct {
	LaTeXCommand  string
	PandocCommand string
	LaTeXTimeout  time.Duration
	PandocTimeout time.Duration
}

// Compiler shells out to pdflatex and pandoc. Each call runs in its own
// temporary directory that is removed afterwards, so calls are idempotent
// and safe to run concurrently.
type Compiler struct {
	latexCommand  string
	pandocCommand string
	latexTimeout  time.Duration
	pandocTimeout time.Duration
}

// New creates a Compiler.
func New(opts Options) *Compiler {
	if opts.LaTeXCommand == "" {
		opts.LaTeXCommand = "pdflatex"
	}
	if opts.PandocCommand == "" {
		opts.PandocCommand = "pandoc"
	}
	if opts.LaTeXTimeout <= 0 {
		opts.LaTeXTimeout = DefaultLaTeXTimeout
	}
	if opts.PandocTimeout <= 0 {
		opts.PandocTimeout = DefaultPandocTimeout
	}
	return &Compiler{
		latexCommand:  opts.LaTeXCommand,
		pandocCommand: opts.PandocCommand,
		latexTimeout:  opts.LaTeXTimeout,
		pandocTimeout: opts.PandocTimeout,
	}
}

// CompilePDF compiles LaTeX source to PDF bytes. The compiler runs twice so
// cross-references resolve.
func (c *Compiler) CompilePDF(ctx context.Context, latexCode string) ([]byte, error) {
	workDir, err := os.MkdirTemp("", "cvgen-latex-*")
	if err != nil {
		return nil, &CompileError{Message: "failed to create work directory", Cause: err}
	}
	defer os.RemoveAll(workDir)

	texPath := filepath.Join(workDir, "cv.tex")
	if err := os.WriteFile(texPath, []byte(latexCode), 0o600); err != nil {
		return nil, &CompileError{Message: "failed to write LaTeX source", Cause: err}
	}

	for run := 0; run < 2; run++ {
		if err := c.runLaTeX(ctx, workDir, texPath); err != nil {
			return nil, err
		}
	}

	pdf, err := os.ReadFile(filepath.Join(workDir, "cv.pdf"))
	if err != nil {
		return nil, &CompileError{Message: "PDF file was not created", Cause: err}
	}
	return pdf, nil
}

func (c *Compiler) runLaTeX(ctx context.Context, workDir, texPath string) error {
	ctx, cancel := context.WithTimeout(ctx, c.latexTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.latexCommand,
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory", workDir,
		texPath,
	)
	cmd.Dir = workDir

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &CompileError{Message: "LaTeX compilation timed out", Cause: ctx.Err()}
		}

		compilationLog := readLogTail(filepath.Join(workDir, "cv.log"))
		message := extractErrorLines(compilationLog)
		if message == "" {
			message = "compilation failed"
		}
		return &CompileError{Message: message, Log: compilationLog, Cause: err}
	}
	return nil
}

// ConvertDOCX converts LaTeX source to DOCX bytes via pandoc.
func (c *Compiler) ConvertDOCX(ctx context.Context, latexCode string) ([]byte, error) {
	workDir, err := os.MkdirTemp("", "cvgen-pandoc-*")
	if err != nil {
		return nil, &ConversionError{Message: "failed to create work directory", Cause: err}
	}
	defer os.RemoveAll(workDir)

	texPath := filepath.Join(workDir, "cv.tex")
	if err := os.WriteFile(texPath, []byte(latexCode), 0o600); err != nil {
		return nil, &ConversionError{Message: "failed to write LaTeX source", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.pandocTimeout)
	defer cancel()

	docxPath := filepath.Join(workDir, "cv.docx")
	cmd := exec.CommandContext(ctx, c.pandocCommand,
		texPath,
		"-o", docxPath,
		"--from=latex",
		"--to=docx",
	)
	cmd.Dir = workDir

	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &ConversionError{Message: "pandoc conversion timed out", Cause: ctx.Err()}
		}
		if errors.Is(err, exec.ErrNotFound) {
			return nil, &ConversionError{Message: "pandoc is not installed or not in PATH", Cause: err}
		}
		return nil, &ConversionError{
			Message: fmt.Sprintf("pandoc error: %s", strings.TrimSpace(stderr.String())),
			Cause:   err,
		}
	}

	docx, err := os.ReadFile(docxPath)
	if err != nil {
		return nil, &ConversionError{Message: "DOCX file was not created", Cause: err}
	}
	return docx, nil
}

// readLogTail returns the last logTailBytes of a compiler log, or "" when
// no log exists.
func readLogTail(logPath string) string {
	content, err := os.ReadFile(logPath)
	if err != nil {
		return ""
	}
	if len(content) > logTailBytes {
		content = content[len(content)-logTailBytes:]
	}
	return string(content)
}

// extractErrorLines pulls the error lines out of a LaTeX compiler log.
func extractErrorLines(compilationLog string) string {
	var errorLines []string
	for _, line := range strings.Split(compilationLog, "\n") {
		if strings.HasPrefix(line, "!") || strings.Contains(line, "Error") {
			errorLines = append(errorLines, line)
			if len(errorLines) == maxErrorLines {
				break
			}
		}
	}
	return strings.Join(errorLines, "\n")
}
