package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX_SpecialCharacters(t *testing.T) {
	assert.Equal(t, `\&`, EscapeLaTeX("&"))
	assert.Equal(t, `\%`, EscapeLaTeX("%"))
	assert.Equal(t, `\$`, EscapeLaTeX("$"))
	assert.Equal(t, `\#`, EscapeLaTeX("#"))
	assert.Equal(t, `\_`, EscapeLaTeX("_"))
	assert.Equal(t, `\{`, EscapeLaTeX("{"))
	assert.Equal(t, `\}`, EscapeLaTeX("}"))
}

func TestEscapeLaTeX_CommandCharacters(t *testing.T) {
	assert.Equal(t, `\textasciitilde{}`, EscapeLaTeX("~"))
	assert.Equal(t, `\textasciicircum{}`, EscapeLaTeX("^"))
	assert.Equal(t, `\textbackslash{}`, EscapeLaTeX(`\`))
}

func TestEscapeLaTeX_MixedText(t *testing.T) {
	assert.Equal(t, `Improved throughput by 40\% \& cut costs`, EscapeLaTeX("Improved throughput by 40% & cut costs"))
}

func TestEscapeLaTeX_PlainTextUnchanged(t *testing.T) {
	assert.Equal(t, "Developed REST APIs in Go", EscapeLaTeX("Developed REST APIs in Go"))
}

func TestEscapeLaTeX_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeLaTeX(""))
}

func TestEscapeLaTeX_Unicode(t *testing.T) {
	assert.Equal(t, "café résumé", EscapeLaTeX("café résumé"))
}
