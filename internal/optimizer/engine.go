// Package optimizer runs the generate-score-retry loop that turns a profile
// and a job description into the highest-scoring CV the model can produce
// within the attempt budget.
package optimizer

import (
	"context"
	"log"

	"github.com/prakash/ats-cv-generator/internal/llm"
	"github.com/prakash/ats-cv-generator/internal/observability"
	"github.com/prakash/ats-cv-generator/internal/scoring"
	"github.com/prakash/ats-cv-generator/internal/types"
)

const (
	// DefaultTargetScore is the composite score at which retrying stops early.
	DefaultTargetScore = 90
	// DefaultMaxAttempts bounds the retry loop.
	DefaultMaxAttempts = 3
	// maxRewriteTargets caps the keywords handed to one bullet rewrite call.
	maxRewriteTargets = 10
)

// ContentGenerator is the subset of the LLM service the optimizer drives.
type ContentGenerator interface {
	GenerateSummary(ctx context.Context, profile *types.ProfileSnapshot, jobDescription string, keywords *types.JDKeywordSet) (string, error)
	OptimizeSkills(ctx context.Context, skills types.Skills, keywords *types.JDKeywordSet) (*llm.SkillsResult, error)
	RewriteBullets(ctx context.Context, bullets, targetKeywords []string, contextNote string) (*llm.RewriteResult, error)
}

// Renderer produces the LaTeX document for one attempt's content.
type Renderer interface {
	Render(profile *types.ProfileSnapshot, content *types.OptimizedContent) (string, error)
}

// Options configures an Engine. Zero values take the defaults.
type Options struct {
	TargetScore int
	MaxAttempts int
	// Progress, when set, receives a formatted summary of each attempt.
	Progress *observability.Printer
}

// Engine orchestrates optimization attempts and keeps the best one.
type Engine struct {
	generator   ContentGenerator
	renderer    Renderer
	targetScore int
	maxAttempts int
	progress    *observability.Printer
}

// New creates an Engine.
func New(generator ContentGenerator, renderer Renderer, opts Options) *Engine {
	if opts.TargetScore <= 0 {
		opts.TargetScore = DefaultTargetScore
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	return &Engine{
		generator:   generator,
		renderer:    renderer,
		targetScore: opts.TargetScore,
		maxAttempts: opts.MaxAttempts,
		progress:    opts.Progress,
	}
}

// Run executes up to MaxAttempts optimization attempts and returns the
// strictly best one. Ties keep the earliest attempt. The loop stops early
// once an attempt reaches the target score. A GenerationFailure is returned
// only when no attempt could be rendered and scored.
func (e *Engine) Run(ctx context.Context, profile *types.ProfileSnapshot, jobDescription string, keywords *types.JDKeywordSet) (*types.GenerationAttempt, error) {
	var best *types.GenerationAttempt
	var lastErr error

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		log.Printf("[OPTIMIZER] attempt %d/%d", attempt, e.maxAttempts)

		content := e.buildContent(ctx, profile, jobDescription, keywords)

		latexCode, err := e.renderer.Render(profile, content)
		if err != nil {
			log.Printf("[OPTIMIZER] attempt %d: render failed: %v", attempt, err)
			lastErr = err
			continue
		}

		analysis := scoring.Analyze(profile, jobDescription, keywords, content)
		log.Printf("[OPTIMIZER] attempt %d scored %d%%", attempt, analysis.Score)

		current := &types.GenerationAttempt{
			Attempt:   attempt,
			Content:   content,
			LaTeXCode: latexCode,
			Analysis:  analysis,
		}

		if e.progress != nil {
			e.progress.PrintAttempt(current)
		}

		if best == nil || current.Analysis.Score > best.Analysis.Score {
			best = current
		}

		if analysis.Score >= e.targetScore {
			log.Printf("[OPTIMIZER] target score %d reached on attempt %d", e.targetScore, attempt)
			break
		}
	}

	if best == nil {
		return nil, &GenerationFailure{Attempts: e.maxAttempts, Cause: lastErr}
	}
	return best, nil
}
