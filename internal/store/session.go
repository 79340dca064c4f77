package store

import (
	"context"

	"github.com/akyairhashvil/studyflow/internal/models"
)

func (d *Database) ListSessions(ctx context.Context) ([]models.StudySession, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, start_time, end_time, duration_seconds
		FROM study_sessions
		ORDER BY end_time DESC`)
	if err != nil {
		return nil, wrapErr(EntitySession, "list", 0, err)
	}
	defer rows.Close()

	var sessions []models.StudySession
	for rows.Next() {
		var s models.StudySession
		if err := rows.Scan(&s.ID, &s.StartTime, &s.EndTime, &s.DurationSeconds); err != nil {
			return nil, wrapErr(EntitySession, "list", 0, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntitySession, "list", 0, err)
	}
	return sessions, nil
}

// CreateSession derives the duration from the wall-clock bracket. A
// bracket of zero or negative length is a validation error and nothing
// is written.
func (d *Database) CreateSession(ctx context.Context, s models.StudySession) (models.StudySession, error) {
	if err := s.Validate(); err != nil {
		return models.StudySession{}, err
	}
	s.DurationSeconds = int(s.EndTime.Sub(s.StartTime).Seconds())

	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO study_sessions (start_time, end_time, duration_seconds)
		VALUES (?, ?, ?)`,
		s.StartTime, s.EndTime, s.DurationSeconds)
	if err != nil {
		return models.StudySession{}, wrapErr(EntitySession, "create", 0, err)
	}
	s.ID, err = res.LastInsertId()
	if err != nil {
		return models.StudySession{}, wrapErr(EntitySession, "create", 0, err)
	}
	return s, nil
}
