package progress

import (
	"fmt"
	"strings"
)

func RenderLessonCompletion(lessonID string, p Progress, unlocked []Achievement) string {
	var b strings.Builder
	b.WriteString("## ✅ Lesson Completed!\n\n")
	fmt.Fprintf(&b, "**Lesson:** %s\n", lessonID)
	fmt.Fprintf(&b, "**Progress:** %d/%d lessons completed\n", p.CompletedLessons, p.TotalLessons)
	fmt.Fprintf(&b, "**Overall Progress:** %d%%\n\n", p.OverallProgress)
	writeUnlocked(&b, unlocked)
	fmt.Fprintf(&b, `### 📈 Next Steps:
- %s
- Take a quiz to test your knowledge
- Try a simulation to practice

Keep up the great work! 🚀`, p.NextMilestone)
	return b.String()
}

func RenderQuizCompletion(quizID string, score int, p Progress, unlocked []Achievement) string {
	passed := score >= PassingScore
	statusIcon, statusText := "❌", "Failed"
	if passed {
		statusIcon, statusText = "✅", "Passed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s Quiz %s!\n\n", statusIcon, statusText)
	fmt.Fprintf(&b, "**Quiz:** %s\n", quizID)
	fmt.Fprintf(&b, "**Score:** %d%%%s\n", score, scoreStar(score))
	fmt.Fprintf(&b, "**Status:** %s (%d%% required to pass)\n\n", statusText, PassingScore)

	if passed {
		fmt.Fprintf(&b, "**Progress:** %d/%d quizzes passed\n", p.PassedQuizzes, p.TotalQuizzes)
		fmt.Fprintf(&b, "**Overall Progress:** %d%%\n\n", p.OverallProgress)
	}
	writeUnlocked(&b, unlocked)

	if passed {
		fmt.Fprintf(&b, `### 📈 Next Steps:
- %s
- Try a simulation to practice
- Move to the next lesson

Excellent work! 🎯`, p.NextMilestone)
	} else {
		b.WriteString(`### 📚 Recommendations:
- Review the lesson material
- Focus on areas where you struggled
- Retake the quiz when ready

Don't give up - learning takes time! 💪`)
	}
	return b.String()
}

func RenderSimulationCompletion(simulationID string, p Progress, unlocked []Achievement) string {
	var b strings.Builder
	b.WriteString("## ⚡ Simulation Completed!\n\n")
	fmt.Fprintf(&b, "**Simulation:** %s\n", simulationID)
	fmt.Fprintf(&b, "**Progress:** %d/%d simulations completed\n", p.CompletedSimulations, p.TotalSimulations)
	fmt.Fprintf(&b, "**Overall Progress:** %d%%\n\n", p.OverallProgress)
	writeUnlocked(&b, unlocked)
	fmt.Fprintf(&b, `### 📈 Next Steps:
- %s
- Try the same transaction on mainnet with small amounts
- Explore more complex DeFi strategies

Great job practicing safely! 🛡️`, p.NextMilestone)
	return b.String()
}

func RenderReport(p Progress) string {
	var b strings.Builder
	b.WriteString("## 📊 Your DeFi Learning Progress\n\n")
	fmt.Fprintf(&b, "**Overall Progress:** %d%% %s\n", p.OverallProgress, progressBar(p.OverallProgress))
	fmt.Fprintf(&b, "**Current Level:** %s\n\n", p.CurrentLevel)
	b.WriteString("### 📚 Learning Stats:\n")
	fmt.Fprintf(&b, "- **Lessons:** %d/%d completed\n", p.CompletedLessons, p.TotalLessons)
	fmt.Fprintf(&b, "- **Quizzes:** %d/%d passed\n", p.PassedQuizzes, p.TotalQuizzes)
	fmt.Fprintf(&b, "- **Simulations:** %d/%d completed\n\n", p.CompletedSimulations, p.TotalSimulations)
	fmt.Fprintf(&b, "### 🏆 Achievements (%d):\n", len(p.Achievements))
	for _, a := range p.Achievements {
		fmt.Fprintf(&b, "%s **%s** - %s\n", a.Icon, a.Name, a.Description)
	}
	fmt.Fprintf(&b, "\n### 🎯 Next Milestone:\n%s\n\n", p.NextMilestone)
	fmt.Fprintf(&b, "### 📈 Recommendations:\n%s\n\n", strings.Join(Recommendations(p), "\n"))
	b.WriteString("Keep learning and stay safe in DeFi! 🚀")
	return b.String()
}

// Recommendations keys off whichever categories lag behind the half-way
// mark, plus the real-funds nudge once overall progress passes 80.
func Recommendations(p Progress) []string {
	var recs []string
	if p.CompletedLessons*2 < p.TotalLessons {
		recs = append(recs, "- Focus on completing more lessons to build foundational knowledge")
	}
	if p.PassedQuizzes*2 < p.TotalQuizzes {
		recs = append(recs, "- Take more quizzes to test your understanding")
	}
	if p.CompletedSimulations*2 < p.TotalSimulations {
		recs = append(recs, "- Practice with more simulations before using real funds")
	}
	if p.OverallProgress > 80 {
		recs = append(recs,
			"- You're ready to start with small real transactions!",
			"- Consider exploring advanced DeFi strategies")
	}
	if len(recs) == 0 {
		recs = append(recs, "- Keep up the great work!")
	}
	return recs
}

func writeUnlocked(b *strings.Builder, unlocked []Achievement) {
	if len(unlocked) == 0 {
		return
	}
	b.WriteString("### 🎉 New Achievements Unlocked!\n")
	for _, a := range unlocked {
		fmt.Fprintf(b, "%s **%s** - %s\n", a.Icon, a.Name, a.Description)
	}
	b.WriteString("\n")
}

func progressBar(percentage int) string {
	filled := percentage / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func scoreStar(score int) string {
	if score >= 90 {
		return " 🌟"
	}
	if score >= 80 {
		return " ⭐"
	}
	return ""
}
