package quiz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestion(n int) string {
	return fmt.Sprintf(`Question %d: What does question %d ask?
A) First option
B) Second option
C) Third option
D) Fourth option
Correct Answer: B
Explanation: The second option is correct.
`, n, n)
}

func TestParseWellFormedQuiz(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 5; i++ {
		sb.WriteString(sampleQuestion(i))
		sb.WriteString("\n")
	}

	q := Parse(sb.String(), "liquidity pools", "easy")
	assert.Equal(t, "generated", q.Source)
	assert.Equal(t, 5, q.TotalQuestions)
	require.Len(t, q.Questions, 5)

	for i, question := range q.Questions {
		assert.Equal(t, i+1, question.ID)
		assert.Len(t, question.Options, 4)
		assert.Equal(t, 1, question.CorrectAnswer)
		assert.Equal(t, "The second option is correct.", question.Explanation)
		assert.Equal(t, "easy", question.Difficulty)
	}
	assert.Equal(t, "First option", q.Questions[0].Options[0])
}

func TestParseDropsMalformedBlock(t *testing.T) {
	text := sampleQuestion(1) + `
Question 2: This one only has three options
A) One
B) Two
C) Three
Correct Answer: A
Explanation: Not enough options.
` + sampleQuestion(3)

	q := Parse(text, "defi", "medium")
	require.Len(t, q.Questions, 2)
	assert.Equal(t, 2, q.TotalQuestions)
	// IDs are renumbered over accepted questions, not source order
	assert.Equal(t, 1, q.Questions[0].ID)
	assert.Equal(t, 2, q.Questions[1].ID)
}

func TestParseMissingAnswerDefaultsToFirstOption(t *testing.T) {
	text := `Question 1: Which option wins by default?
A) This one
B) Not this
C) Nor this
D) Nor this either
Explanation: No answer line given.
`
	q := Parse(text, "defi", "easy")
	require.Len(t, q.Questions, 1)
	assert.Equal(t, 0, q.Questions[0].CorrectAnswer)
}

func TestParseNoQuestionsAtAll(t *testing.T) {
	q := Parse("Sorry, I cannot produce a quiz right now.", "defi", "easy")
	assert.Empty(t, q.Questions)
	assert.Equal(t, 0, q.TotalQuestions)
}

func TestAnswerIndexMapping(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"A", 0}, {"B", 1}, {"C", 2}, {"D", 3},
		{" b ", 1}, {"d) something", 3},
		{"E", 0}, {"", 0}, {"?", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, answerIndex(tt.in), "input %q", tt.in)
	}
}

func TestParseOptionTextTrimmed(t *testing.T) {
	text := `Question 1: Spacing?
A)   padded option
B) two
C) three
D) four
Correct Answer: A
`
	q := Parse(text, "defi", "easy")
	require.Len(t, q.Questions, 1)
	assert.Equal(t, "padded option", q.Questions[0].Options[0])
}
