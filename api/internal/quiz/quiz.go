package quiz

import (
	"context"
	"fmt"
	"log"
	"time"

	"defi-navigator/api/internal/llm"
)

type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

type Quiz struct {
	Topic          string     `json:"topic"`
	Difficulty     string     `json:"difficulty"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"totalQuestions"`
	// Source is "generated" or "static" so callers can tell fallback
	// output apart from model output.
	Source string `json:"source"`
}

// Generator builds quizzes from the generative backend with a static
// fallback. A nil Engine means fallback only.
type Generator struct {
	Engine  llm.Engine
	Timeout time.Duration
}

func NewGenerator(engine llm.Engine) *Generator {
	return &Generator{Engine: engine, Timeout: 30 * time.Second}
}

const systemPrompt = "You are an expert DeFi educator creating educational quizzes. " +
	"Focus on practical knowledge that helps users make better decisions."

func buildPrompt(topic, difficulty string, count int) string {
	return fmt.Sprintf(`Create a %s level quiz about "%s" in DeFi with exactly %d multiple choice questions.

Requirements:
- Each question should have 4 options (A, B, C, D)
- Include clear explanations for correct answers
- Focus on practical knowledge and real-world applications
- Avoid overly technical jargon for easy level
- Include risk awareness questions

Format each question as:
Question X: [Question text]
A) [Option A]
B) [Option B]
C) [Option C]
D) [Option D]
Correct Answer: [Letter]
Explanation: [Detailed explanation]

Topic: %s
Difficulty: %s
Number of questions: %d
`, difficulty, topic, count, topic, difficulty, count)
}

// BuildQuiz asks the backend for questions and parses its free text. An
// unreachable backend, an error, or zero parseable questions all fall
// through to the static bank, exactly once, with no retries.
func (g *Generator) BuildQuiz(ctx context.Context, topic, difficulty string, count int) Quiz {
	if g.Engine != nil {
		cctx, cancel := context.WithTimeout(ctx, g.Timeout)
		defer cancel()

		text, err := g.Engine.Complete(cctx, llm.Request{
			System:      systemPrompt,
			User:        buildPrompt(topic, difficulty, count),
			Temperature: 0.7,
			MaxTokens:   2000,
		})
		if err != nil {
			log.Printf("quiz: %s generation failed, using static bank: %v", g.Engine.Name(), err)
		} else {
			q := Parse(text, topic, difficulty)
			if len(q.Questions) > 0 {
				return capQuestions(q, count)
			}
			log.Printf("quiz: no parseable questions for topic %q, using static bank", topic)
		}
	}
	return Fallback(topic, difficulty, count)
}

// capQuestions trims to the requested count; short results stay short and
// TotalQuestions tracks the actual list length.
func capQuestions(q Quiz, count int) Quiz {
	if count > 0 && len(q.Questions) > count {
		q.Questions = q.Questions[:count]
	}
	q.TotalQuestions = len(q.Questions)
	return q
}

// CheckAnswer verifies a user's answer against a quiz question.
func (q Quiz) CheckAnswer(questionID, userAnswer int) (correct bool, explanation, correctAnswer string) {
	for _, question := range q.Questions {
		if question.ID != questionID {
			continue
		}
		return userAnswer == question.CorrectAnswer,
			question.Explanation,
			string(rune('A' + question.CorrectAnswer))
	}
	return false, "Question not found", "Unknown"
}
