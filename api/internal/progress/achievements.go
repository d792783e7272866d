package progress

import "time"

// Unlock checks use exact equality, not at-least: re-running an event
// against stale counters cannot double-count, and an id already present
// is never re-added.
func checkNewAchievements(p *Progress, now time.Time) []Achievement {
	var unlocked []Achievement

	if p.CompletedLessons == 5 && !hasAchievement(*p, "lesson_streak") {
		unlocked = append(unlocked, Achievement{
			ID:          "lesson_streak",
			Name:        "Learning Streak",
			Description: "Completed 5 lessons",
			UnlockedAt:  now,
			Icon:        "🔥",
		})
	}

	if p.PassedQuizzes == 10 && !hasAchievement(*p, "quiz_expert") {
		unlocked = append(unlocked, Achievement{
			ID:          "quiz_expert",
			Name:        "Quiz Expert",
			Description: "Passed 10 quizzes",
			UnlockedAt:  now,
			Icon:        "🏆",
		})
	}

	if p.CompletedSimulations == 5 && !hasAchievement(*p, "simulation_pro") {
		unlocked = append(unlocked, Achievement{
			ID:          "simulation_pro",
			Name:        "Simulation Pro",
			Description: "Completed 5 simulations",
			UnlockedAt:  now,
			Icon:        "⚡",
		})
	}

	p.Achievements = append(p.Achievements, unlocked...)
	return unlocked
}

func hasAchievement(p Progress, id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
