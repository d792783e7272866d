package quiz

import (
	"log"
	"regexp"
	"strings"
)

// The generated-text grammar, kept deliberately small:
//
//	Question <n>:  starts a block; first non-empty line is the question
//	^[A-D])        an option line, collected in order
//	Correct Answer: <letter>
//	Explanation:   <text>
//
// A block is accepted only with question text and exactly 4 options;
// anything else is dropped whole.
var (
	questionDelim = regexp.MustCompile(`Question \d+:`)
	optionLine    = regexp.MustCompile(`^[A-D]\)`)
)

// Parse converts a generated quiz text into the strict question schema.
// Malformed blocks never fail the whole quiz; they are dropped silently
// from the caller's point of view (counted in the server log).
func Parse(text, topic, difficulty string) Quiz {
	blocks := questionDelim.Split(text, -1)

	var questions []Question
	dropped := 0
	if len(blocks) > 1 {
		for _, block := range blocks[1:] {
			q, ok := parseBlock(block, difficulty)
			if !ok {
				dropped++
				continue
			}
			q.ID = len(questions) + 1
			questions = append(questions, q)
		}
	}
	if dropped > 0 {
		log.Printf("quiz: dropped %d malformed question block(s) for topic %q", dropped, topic)
	}

	return Quiz{
		Topic:          topic,
		Difficulty:     difficulty,
		Questions:      questions,
		TotalQuestions: len(questions),
		Source:         "generated",
	}
}

func parseBlock(block, difficulty string) (Question, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) == 0 {
		return Question{}, false
	}
	questionText := strings.TrimSpace(lines[0])

	var (
		options       []string
		correctAnswer int
		explanation   string
	)
	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		switch {
		case optionLine.MatchString(line):
			options = append(options, strings.TrimSpace(line[2:]))
		case strings.HasPrefix(line, "Correct Answer:"):
			correctAnswer = answerIndex(strings.TrimPrefix(line, "Correct Answer:"))
		case strings.HasPrefix(line, "Explanation:"):
			explanation = strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))
		}
	}

	if questionText == "" || len(options) != 4 {
		return Question{}, false
	}
	return Question{
		Question:      questionText,
		Options:       options,
		CorrectAnswer: correctAnswer,
		Explanation:   explanation,
		Difficulty:    difficulty,
	}, true
}

// answerIndex maps a letter to a zero-based option index, A→0 … D→3.
// Anything unexpected resolves to 0.
func answerIndex(s string) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	if c := s[0]; c >= 'A' && c <= 'D' {
		return int(c - 'A')
	}
	return 0
}
