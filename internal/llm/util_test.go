package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"key\": \"value\"}\n```"
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"key\": \"value\"}\n```"
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_LanguageIdentifierSkipped(t *testing.T) {
	input := "```javascript\n{\"key\": \"value\"}\n```"
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_PlainTextUnchanged(t *testing.T) {
	input := `{"key": "value"}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_WhitespaceTrimmed(t *testing.T) {
	input := "  \n{\"key\": \"value\"}\n  "
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(input))
}
