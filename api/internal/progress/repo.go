package progress

import (
	"context"
	"time"
)

// Repository owns the read-modify-write boundary for user progress. The
// state machine itself stays pure; atomicity is the store's concern.
type Repository interface {
	Load(ctx context.Context, userID string) (Progress, error)
	Save(ctx context.Context, userID string, p Progress) error
}

// MockRepo reproduces the reference behavior: a freshly seeded record on
// every load, writes discarded. Useful for demos and tests.
type MockRepo struct{}

func (MockRepo) Load(_ context.Context, userID string) (Progress, error) {
	return Seed(userID), nil
}

func (MockRepo) Save(context.Context, string, Progress) error { return nil }

// Seed is the default progress record for a user with no stored state.
func Seed(userID string) Progress {
	return Progress{
		UserID:               userID,
		TotalLessons:         20,
		CompletedLessons:     8,
		TotalQuizzes:         15,
		PassedQuizzes:        6,
		TotalSimulations:     10,
		CompletedSimulations: 3,
		OverallProgress:      42,
		Achievements: []Achievement{
			{
				ID:          "first_lesson",
				Name:        "First Steps",
				Description: "Completed your first DeFi lesson",
				UnlockedAt:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
				Icon:        "🎯",
			},
			{
				ID:          "quiz_master",
				Name:        "Quiz Master",
				Description: "Passed 5 quizzes in a row",
				UnlockedAt:  time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC),
				Icon:        "🧠",
			},
		},
		CurrentLevel:  "Beginner",
		NextMilestone: "Complete 10 lessons to reach Intermediate level",
	}
}

// Tracker glues the repository to the pure state machine.
type Tracker struct {
	Repo Repository
}

// Track loads the user's progress, applies one event and writes the
// result back. Read-only events skip the write.
func (t *Tracker) Track(ctx context.Context, userID string, ev Event) (Progress, []Achievement, error) {
	p, err := t.Repo.Load(ctx, userID)
	if err != nil {
		return Progress{}, nil, err
	}
	updated, unlocked, err := ApplyEvent(p, ev, time.Now().UTC())
	if err != nil {
		return Progress{}, nil, err
	}
	if ev.Action != ActionGetProgress {
		if err := t.Repo.Save(ctx, userID, updated); err != nil {
			return Progress{}, nil, err
		}
	}
	return updated, unlocked, nil
}
