package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bulletOfWords builds a bullet with exactly n words.
func bulletOfWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "word"
	}
	return strings.Join(words, " ")
}

func TestAnalyzeBulletLength_Exactly12WordsIsOptimal(t *testing.T) {
	analysis := AnalyzeBulletLength([]string{bulletOfWords(12)})
	assert.Equal(t, 1, analysis.OptimalBullets)
	assert.Equal(t, 0, analysis.TooShort)
}

func TestAnalyzeBulletLength_Exactly11WordsIsTooShort(t *testing.T) {
	analysis := AnalyzeBulletLength([]string{bulletOfWords(11)})
	assert.Equal(t, 1, analysis.TooShort)
	assert.Equal(t, 0, analysis.OptimalBullets)
}

func TestAnalyzeBulletLength_Exactly20WordsIsOptimal(t *testing.T) {
	analysis := AnalyzeBulletLength([]string{bulletOfWords(20)})
	assert.Equal(t, 1, analysis.OptimalBullets)
	assert.Equal(t, 0, analysis.TooLong)
}

func TestAnalyzeBulletLength_Exactly21WordsIsTooLong(t *testing.T) {
	analysis := AnalyzeBulletLength([]string{bulletOfWords(21)})
	assert.Equal(t, 1, analysis.TooLong)
	assert.Equal(t, 0, analysis.OptimalBullets)
}

func TestAnalyzeBulletLength_MixedBullets(t *testing.T) {
	analysis := AnalyzeBulletLength([]string{
		bulletOfWords(5),
		bulletOfWords(15),
		bulletOfWords(25),
	})
	assert.Equal(t, 3, analysis.TotalBullets)
	assert.Equal(t, 1, analysis.TooShort)
	assert.Equal(t, 1, analysis.OptimalBullets)
	assert.Equal(t, 1, analysis.TooLong)
	assert.InDelta(t, 33.33, analysis.BulletScore, 0.01)
}

func TestAnalyzeBulletLength_NoBullets(t *testing.T) {
	analysis := AnalyzeBulletLength(nil)
	assert.Equal(t, 0, analysis.TotalBullets)
	assert.Equal(t, 0.0, analysis.BulletScore)
}

func TestAnalyzeBulletLength_TruncatesLongPreviews(t *testing.T) {
	long := strings.Repeat("abcde ", 20)
	analysis := AnalyzeBulletLength([]string{long})
	assert.True(t, strings.HasSuffix(analysis.BulletDetails[0].Text, "..."))
	assert.LessOrEqual(t, len(analysis.BulletDetails[0].Text), 53)
}
