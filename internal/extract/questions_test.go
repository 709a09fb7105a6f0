package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerSpan_StopsAtSentenceEnd(t *testing.T) {
	got := answerSpan(" I want to save the commission. And other things.")
	assert.Equal(t, "I want to save the commission.", got)
}

func TestAnswerSpan_KeepsDecimalPoints(t *testing.T) {
	got := answerSpan(" Probably around 1.2 million.")
	assert.Equal(t, "Probably around 1.2 million.", got)
}

func TestAnswerSpan_StopsAtNextQuestion(t *testing.T) {
	got := answerSpan(" Three months or so? Maybe sooner.")
	assert.Equal(t, "Three months or so?", got)
}

func TestAnswerSpan_NoTerminator(t *testing.T) {
	got := answerSpan(" just the commission savings")
	assert.Equal(t, "just the commission savings", got)
}

func TestStripFillers_Leading(t *testing.T) {
	assert.Equal(t, "I want to save the commission.",
		stripFillers("Um, well, I want to save the commission."))
}

func TestStripFillers_Multiword(t *testing.T) {
	assert.Equal(t, "the paperwork scares me",
		stripFillers("you know, the paperwork scares me"))
}

func TestStripFillers_NoFiller(t *testing.T) {
	assert.Equal(t, "Probably in the spring.", stripFillers("Probably in the spring."))
}

func TestStripFillers_DoesNotEatWords(t *testing.T) {
	// "so" must not strip the prefix of "something".
	assert.Equal(t, "something came up", stripFillers("something came up"))
}

func TestQuestionAnchored_LengthChangingFoldKeepsOffsets(t *testing.T) {
	// "İ" lowers to a longer byte sequence; the answer span must not shift.
	text := "İlk not. What's got you thinking about selling your home yourself instead of working with an agent? I want to save the commission."
	fields := questionAnchored(text)

	f, ok := fields["motivation"]
	require.True(t, ok)
	assert.Equal(t, "i want to save the commission.", strings.ToLower(f.Value))
}

func TestQuestionAnchored_DiscardsMeaninglessAnswer(t *testing.T) {
	text := "What's your biggest concern about selling it yourself? Um, yeah."
	fields := questionAnchored(text)
	_, ok := fields["concerns"]
	assert.False(t, ok)
}

func TestAcceptable_MinLength(t *testing.T) {
	r := RuleFor("motivation") // MinLen 5
	assert.False(t, acceptable(r, "meh"))
	assert.True(t, acceptable(r, "save the commission"))
}

func TestAcceptable_MeaninglessList(t *testing.T) {
	r := RuleFor("openness") // MinLen 4
	assert.False(t, acceptable(r, "Yeah."))
	assert.False(t, acceptable(r, "sure"))
	assert.True(t, acceptable(r, "Open to the right agent"))
}
