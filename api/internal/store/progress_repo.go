package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"defi-navigator/api/internal/progress"
)

var ErrNotFound = sql.ErrNoRows

// ProgressRepo keeps user progress in Postgres. It implements
// progress.Repository; the load-apply-save cycle is the transaction
// boundary the state machine relies on.
type ProgressRepo struct{ DB *sql.DB }

func NewProgressRepo(db *sql.DB) *ProgressRepo { return &ProgressRepo{DB: db} }

// EnsureSchema creates the progress table when missing.
func (r *ProgressRepo) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists user_progress (
  user_id               text primary key,
  total_lessons         int not null,
  completed_lessons     int not null,
  total_quizzes         int not null,
  passed_quizzes        int not null,
  total_simulations     int not null,
  completed_simulations int not null,
  overall_progress      int not null,
  achievements          jsonb not null default '[]',
  current_level         text not null default '',
  next_milestone        text not null default '',
  updated_at            timestamptz not null default now()
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}

// Load returns the stored record, or the seeded default for a user with
// no row yet.
func (r *ProgressRepo) Load(ctx context.Context, userID string) (progress.Progress, error) {
	const q = `
select total_lessons, completed_lessons,
       total_quizzes, passed_quizzes,
       total_simulations, completed_simulations,
       overall_progress, achievements,
       coalesce(current_level,'') as current_level,
       coalesce(next_milestone,'') as next_milestone
from user_progress
where user_id = $1`

	p := progress.Progress{UserID: userID}
	var achievements []byte
	err := r.DB.QueryRowContext(ctx, q, userID).Scan(
		&p.TotalLessons, &p.CompletedLessons,
		&p.TotalQuizzes, &p.PassedQuizzes,
		&p.TotalSimulations, &p.CompletedSimulations,
		&p.OverallProgress, &achievements,
		&p.CurrentLevel, &p.NextMilestone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.Seed(userID), nil
	}
	if err != nil {
		return progress.Progress{}, fmt.Errorf("load progress: %w", err)
	}
	if err := json.Unmarshal(achievements, &p.Achievements); err != nil {
		return progress.Progress{}, fmt.Errorf("load progress: bad achievements json: %w", err)
	}
	return p, nil
}

// Save upserts the whole record.
func (r *ProgressRepo) Save(ctx context.Context, userID string, p progress.Progress) error {
	achievements, err := json.Marshal(p.Achievements)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	const q = `
insert into user_progress (
  user_id, total_lessons, completed_lessons,
  total_quizzes, passed_quizzes,
  total_simulations, completed_simulations,
  overall_progress, achievements, current_level, next_milestone,
  updated_at
) values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now())
on conflict (user_id) do update
set total_lessons = excluded.total_lessons,
    completed_lessons = excluded.completed_lessons,
    total_quizzes = excluded.total_quizzes,
    passed_quizzes = excluded.passed_quizzes,
    total_simulations = excluded.total_simulations,
    completed_simulations = excluded.completed_simulations,
    overall_progress = excluded.overall_progress,
    achievements = excluded.achievements,
    current_level = excluded.current_level,
    next_milestone = excluded.next_milestone,
    updated_at = now()`

	_, err = r.DB.ExecContext(ctx, q,
		userID, p.TotalLessons, p.CompletedLessons,
		p.TotalQuizzes, p.PassedQuizzes,
		p.TotalSimulations, p.CompletedSimulations,
		p.OverallProgress, achievements, p.CurrentLevel, p.NextMilestone,
	)
	return err
}
