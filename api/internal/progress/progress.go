package progress

import (
	"fmt"
	"math"
	"time"
)

type Action string

const (
	ActionCompleteLesson     Action = "complete_lesson"
	ActionPassQuiz           Action = "pass_quiz"
	ActionCompleteSimulation Action = "complete_simulation"
	ActionGetProgress        Action = "get_progress"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionCompleteLesson, ActionPassQuiz, ActionCompleteSimulation, ActionGetProgress:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown action: %s", s)
	}
}

// Event is one completion event. ItemID names the lesson/quiz/simulation;
// Score applies to pass_quiz only.
type Event struct {
	Action Action
	ItemID string
	Score  int
}

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlockedAt"`
	Icon        string    `json:"icon"`
}

type Progress struct {
	UserID               string        `json:"userId"`
	TotalLessons         int           `json:"totalLessons"`
	CompletedLessons     int           `json:"completedLessons"`
	TotalQuizzes         int           `json:"totalQuizzes"`
	PassedQuizzes        int           `json:"passedQuizzes"`
	TotalSimulations     int           `json:"totalSimulations"`
	CompletedSimulations int           `json:"completedSimulations"`
	OverallProgress      int           `json:"overallProgress"`
	Achievements         []Achievement `json:"achievements"`
	CurrentLevel         string        `json:"currentLevel"`
	NextMilestone        string        `json:"nextMilestone"`
}

// PassingScore is the quiz pass threshold.
const PassingScore = 70

// ApplyEvent is the pure old-state + event -> new-state transition.
// get_progress never mutates. The returned slice holds achievements
// unlocked by this event only.
func ApplyEvent(p Progress, ev Event, now time.Time) (Progress, []Achievement, error) {
	switch ev.Action {
	case ActionGetProgress:
		return p, nil, nil
	case ActionCompleteLesson:
		p.CompletedLessons++
	case ActionPassQuiz:
		if ev.Score >= PassingScore {
			p.PassedQuizzes++
		}
	case ActionCompleteSimulation:
		p.CompletedSimulations++
	default:
		return p, nil, fmt.Errorf("unknown action: %s", ev.Action)
	}

	p.OverallProgress = overall(p)
	unlocked := checkNewAchievements(&p, now)
	return p, unlocked, nil
}

// overall is the weighted blend: lessons 50%, quizzes 30%, simulations 20%.
// A zero-total category contributes 0 rather than dividing by zero.
func overall(p Progress) int {
	var sum float64
	if p.TotalLessons > 0 {
		sum += float64(p.CompletedLessons) / float64(p.TotalLessons) * 100 * 0.5
	}
	if p.TotalQuizzes > 0 {
		sum += float64(p.PassedQuizzes) / float64(p.TotalQuizzes) * 100 * 0.3
	}
	if p.TotalSimulations > 0 {
		sum += float64(p.CompletedSimulations) / float64(p.TotalSimulations) * 100 * 0.2
	}
	return int(math.Round(sum))
}
