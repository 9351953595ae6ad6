package rendering

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/prakash/ats-cv-generator/internal/types"
)

//go:embed templates/cv.tmpl
var templateFS embed.FS

// multiBlankLines matches three or more consecutive newlines.
var multiBlankLines = regexp.MustCompile(`\n{3,}`)

// Generator renders LaTeX CV documents from a parsed template.
// Templates use << >> action delimiters so LaTeX braces and percent signs
// never collide with template syntax.
type Generator struct {
	tmpl *template.Template
}

// NewGenerator creates a Generator backed by the embedded default template.
func NewGenerator() (*Generator, error) {
	content, err := templateFS.ReadFile("templates/cv.tmpl")
	if err != nil {
		return nil, &TemplateError{Message: "failed to read embedded template", Cause: err}
	}
	return newGenerator("cv.tmpl", string(content))
}

// NewGeneratorFromFile creates a Generator from a template file on disk.
func NewGeneratorFromFile(path string) (*Generator, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", path),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", path),
			Cause:   err,
		}
	}
	return newGenerator(filepath.Base(path), string(content))
}

func newGenerator(name, content string) (*Generator, error) {
	tmpl, err := template.New(name).Delims("<<", ">>").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
		"join":   strings.Join,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return &Generator{tmpl: tmpl}, nil
}

// Render produces the LaTeX document for a profile and one attempt's
// optimized content. A nil content renders the profile's originals.
func (g *Generator) Render(profile *types.ProfileSnapshot, content *types.OptimizedContent) (string, error) {
	data := BuildTemplateData(profile, content)

	var result strings.Builder
	if err := g.tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}

	return CleanupLaTeX(result.String()), nil
}

// CleanupLaTeX collapses runs of three or more newlines into one blank line
// and strips trailing whitespace from every line.
func CleanupLaTeX(latexCode string) string {
	latexCode = multiBlankLines.ReplaceAllString(latexCode, "\n\n")

	lines := strings.Split(latexCode, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// ValidateLaTeX performs advisory structural checks on generated LaTeX.
// The returned issues never block generation; callers surface them as
// warnings.
func ValidateLaTeX(latexCode string) []string {
	var issues []string

	openBraces := strings.Count(latexCode, "{")
	closeBraces := strings.Count(latexCode, "}")
	if openBraces != closeBraces {
		issues = append(issues, fmt.Sprintf("Unbalanced braces: %d open, %d close", openBraces, closeBraces))
	}

	if !strings.Contains(latexCode, `\begin{document}`) {
		issues = append(issues, `Missing \begin{document}`)
	}
	if !strings.Contains(latexCode, `\end{document}`) {
		issues = append(issues, `Missing \end{document}`)
	}
	if !strings.Contains(latexCode, `\documentclass`) {
		issues = append(issues, `Missing \documentclass`)
	}

	return issues
}
