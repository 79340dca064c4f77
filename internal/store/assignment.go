package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/studyflow/internal/config"
	"github.com/akyairhashvil/studyflow/internal/models"
)

func (d *Database) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	query, args := NewAssignmentQuery().OrderBy("due_date ASC, id ASC").Build()
	return d.queryAssignments(ctx, "list", query, args...)
}

func (d *Database) ListAssignmentsForCourse(ctx context.Context, courseID int64) ([]models.Assignment, error) {
	query, args := NewAssignmentQuery().
		WhereCourse(courseID).
		OrderBy("due_date ASC, id ASC").
		Build()
	return d.queryAssignments(ctx, "list course", query, args...)
}

func (d *Database) queryAssignments(ctx context.Context, op, query string, args ...interface{}) ([]models.Assignment, error) {
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(EntityAssignment, op, 0, err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, wrapErr(EntityAssignment, op, 0, err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityAssignment, op, 0, err)
	}
	return assignments, nil
}

func (d *Database) GetAssignment(ctx context.Context, id int64) (models.Assignment, error) {
	query, args := NewAssignmentQuery().Where("id = ?", id).Build()
	row := d.DB.QueryRowContext(ctx, query, args...)
	a, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return models.Assignment{}, notFound(EntityAssignment, id, d.knownIDs(ctx, "assignments"))
	}
	if err != nil {
		return models.Assignment{}, wrapErr(EntityAssignment, "get", id, err)
	}
	return a, nil
}

func (d *Database) CreateAssignment(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	applyAssignmentDefaults(&a)
	if err := a.Validate(); err != nil {
		return models.Assignment{}, err
	}
	a.CreatedAt = time.Now()
	a.CompletedAt = nil
	if a.Status == models.StatusCompleted {
		now := a.CreatedAt
		a.CompletedAt = &now
	}
	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO assignments (title, description, course_id, due_date, priority, status, weight, grade, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Title, a.Description, a.CourseID, a.DueDate, string(a.Priority), string(a.Status),
		a.Weight, a.Grade, a.CreatedAt, ptrTime(a.CompletedAt))
	if err != nil {
		return models.Assignment{}, wrapErr(EntityAssignment, "create", 0, err)
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return models.Assignment{}, wrapErr(EntityAssignment, "create", 0, err)
	}
	return a, nil
}

// UpdateAssignment persists the record and owns the CompletedAt
// transition: pending->completed stamps the moment, completed->pending
// clears it, completed->completed keeps the original stamp.
func (d *Database) UpdateAssignment(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	applyAssignmentDefaults(&a)
	if err := a.Validate(); err != nil {
		return models.Assignment{}, err
	}
	existing, err := d.GetAssignment(ctx, a.ID)
	if err != nil {
		return models.Assignment{}, err
	}
	a.CreatedAt = existing.CreatedAt
	a.CompletedAt = completionStamp(existing, a)

	_, err = d.DB.ExecContext(ctx, `
		UPDATE assignments
		SET title = ?, description = ?, course_id = ?, due_date = ?, priority = ?, status = ?, weight = ?, grade = ?, completed_at = ?
		WHERE id = ?`,
		a.Title, a.Description, a.CourseID, a.DueDate, string(a.Priority), string(a.Status),
		a.Weight, a.Grade, ptrTime(a.CompletedAt), a.ID)
	if err != nil {
		return models.Assignment{}, wrapErr(EntityAssignment, "update", a.ID, err)
	}
	return a, nil
}

func (d *Database) DeleteAssignment(ctx context.Context, id int64) error {
	res, err := d.DB.ExecContext(ctx, "DELETE FROM assignments WHERE id = ?", id)
	if err != nil {
		return wrapErr(EntityAssignment, "delete", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(EntityAssignment, id, d.knownIDs(ctx, "assignments"))
	}
	return nil
}

// completionStamp implements the only conditional mutation in the data
// model: CompletedAt follows the status field.
func completionStamp(existing, updated models.Assignment) *time.Time {
	switch {
	case updated.Status == models.StatusCompleted && existing.Status != models.StatusCompleted:
		now := time.Now()
		return &now
	case updated.Status == models.StatusPending:
		return nil
	default:
		return existing.CompletedAt
	}
}

func applyAssignmentDefaults(a *models.Assignment) {
	if a.Priority == "" {
		a.Priority = models.PriorityMedium
	}
	if a.Status == "" {
		a.Status = models.StatusPending
	}
	if a.Weight == 0 {
		a.Weight = config.DefaultWeight
	}
}

func scanAssignment(row rowScanner) (models.Assignment, error) {
	var a models.Assignment
	var description sql.NullString
	var grade sql.NullFloat64
	var completedAt sql.NullTime
	var priority, status string
	err := row.Scan(&a.ID, &a.Title, &description, &a.CourseID, &a.DueDate, &priority, &status,
		&a.Weight, &grade, &a.CreatedAt, &completedAt)
	if err != nil {
		return a, err
	}
	a.Description = description.String
	a.Priority = models.Priority(priority)
	a.Status = models.AssignmentStatus(status)
	if grade.Valid {
		a.Grade = &grade.Float64
	}
	if completedAt.Valid {
		t := completedAt.Time
		a.CompletedAt = &t
	}
	return a, nil
}

func ptrTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
