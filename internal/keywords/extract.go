// Package keywords provides keyword normalization, synonym expansion, and
// rule-based keyword extraction for ATS matching.
package keywords

import (
	"regexp"
	"strings"
)

// StopWords is the stop-word list used by keyword extraction and the
// semantic-overlap estimator.
var StopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "been": true, "be": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "shall": true, "can": true, "need": true,
	"dare": true, "ought": true, "used": true, "it": true, "its": true,
	"this": true, "that": true, "these": true, "those": true, "i": true,
	"you": true, "he": true, "she": true, "we": true, "they": true,
	"what": true, "which": true, "who": true, "whom": true, "when": true,
	"where": true, "why": true, "how": true, "all": true, "each": true,
	"every": true, "both": true, "few": true, "more": true, "most": true,
	"other": true, "some": true, "such": true, "no": true, "nor": true,
	"not": true, "only": true, "own": true, "same": true, "so": true,
	"than": true, "too": true, "very": true, "just": true, "also": true,
	"now": true, "here": true, "there": true, "then": true, "once": true,
	"if": true, "else": true, "because": true, "while": true,
	"although": true, "though": true, "after": true, "before": true,
	"above": true, "below": true, "between": true, "into": true,
	"through": true, "during": true, "out": true, "about": true,
	"against": true, "among": true, "any": true, "etc": true, "our": true,
	"your": true, "their": true, "his": true, "her": true, "up": true,
	"down": true, "over": true, "under": true, "again": true,
	"further": true, "am": true, "being": true, "able": true,
}

// nonTechnicalChars matches everything except characters meaningful in tech
// terms (letters, digits, dots, hyphens, plus, hash).
var nonTechnicalChars = regexp.MustCompile(`[^a-z0-9\s.\-+#]`)

// ExtractProfileKeywords extracts candidate keywords from free profile text
// using rule-based tokenization: single tokens longer than two characters
// after stop-word filtering, plus adjacent-word bigrams. The result is
// deduplicated; order follows first appearance.
func ExtractProfileKeywords(text string) []string {
	textClean := nonTechnicalChars.ReplaceAllString(strings.ToLower(text), " ")
	words := strings.Fields(textClean)

	seen := make(map[string]bool)
	var extracted []string
	add := func(kw string) {
		if !seen[kw] {
			seen[kw] = true
			extracted = append(extracted, kw)
		}
	}

	for _, word := range words {
		word = strings.Trim(word, ".-")
		if len(word) > 2 && !StopWords[word] {
			add(word)
		}
	}

	for i := 0; i < len(words)-1; i++ {
		w1 := strings.Trim(words[i], ".-")
		w2 := strings.Trim(words[i+1], ".-")
		if w1 == "" || w2 == "" || StopWords[w1] || StopWords[w2] {
			continue
		}
		if len(w1) > 1 && len(w2) > 1 {
			add(w1 + " " + w2)
		}
	}

	return extracted
}
