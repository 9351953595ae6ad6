package ingestion

import (
	"context"
	"log"
)

// JobDescription fetches a job posting URL and returns its plain text.
// When the static fetch yields too little text and the browser fallback is
// enabled, the page is re-rendered headlessly before extraction.
func JobDescription(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result, err := fetchURL(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	text, err := ExtractJobText(result.HTML)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "text extraction failed", Cause: err}
	}

	if ShouldUseBrowser(text) && opts.UseBrowser {
		log.Printf("[INGESTION] static fetch yielded %d chars, retrying with browser: %s", len(text), urlStr)

		html, err := renderWithBrowser(ctx, urlStr, opts.Timeout, opts.Verbose)
		if err != nil {
			// Keep whatever the static fetch produced.
			log.Printf("[INGESTION] browser fallback failed: %v", err)
			return text, nil
		}

		rendered, err := ExtractJobText(html)
		if err == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	return text, nil
}
