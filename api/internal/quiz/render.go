package quiz

import (
	"fmt"
	"strings"
)

var difficultyEmoji = map[string]string{
	"easy":   "🟢",
	"medium": "🟡",
	"hard":   "🔴",
}

// Render produces the display text for a quiz.
func (q Quiz) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# 📚 DeFi Quiz: %s\n\n", q.Topic)
	fmt.Fprintf(&b, "**Difficulty:** %s %s\n", strings.ToUpper(q.Difficulty), difficultyEmoji[q.Difficulty])
	fmt.Fprintf(&b, "**Questions:** %d\n\n---\n\n", q.TotalQuestions)

	for _, question := range q.Questions {
		fmt.Fprintf(&b, "## Question %d\n%s\n\n", question.ID, question.Question)
		for i, option := range question.Options {
			fmt.Fprintf(&b, "**%c)** %s\n", 'A'+i, option)
		}
		fmt.Fprintf(&b, `
<details>
<summary>Click to see answer and explanation</summary>

**Correct Answer:** %c

**Explanation:** %s
</details>

---

`, 'A'+question.CorrectAnswer, question.Explanation)
	}

	b.WriteString(`## 🎯 Quiz Tips:
- Take your time to read each question carefully
- Think about real-world applications
- Consider the risks involved in each scenario
- Review explanations to deepen your understanding

## 📈 Next Steps:
1. Complete this quiz
2. Review any questions you got wrong
3. Practice the concepts on testnet
4. Take a more advanced quiz on this topic

*Remember: Understanding these concepts is crucial for safe DeFi participation!*`)
	return b.String()
}
