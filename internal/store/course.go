package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/akyairhashvil/studyflow/internal/config"
	"github.com/akyairhashvil/studyflow/internal/models"
)

const courseColumns = "id, name, code, instructor, color, credits, semester, schedule, created_at"

func (d *Database) ListCourses(ctx context.Context) ([]models.Course, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+courseColumns+" FROM courses ORDER BY name ASC")
	if err != nil {
		return nil, wrapErr(EntityCourse, "list", 0, err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, wrapErr(EntityCourse, "list", 0, err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityCourse, "list", 0, err)
	}
	return courses, nil
}

func (d *Database) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	row := d.DB.QueryRowContext(ctx,
		"SELECT "+courseColumns+" FROM courses WHERE id = ?", id)
	c, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return models.Course{}, notFound(EntityCourse, id, d.knownIDs(ctx, "courses"))
	}
	if err != nil {
		return models.Course{}, wrapErr(EntityCourse, "get", id, err)
	}
	return c, nil
}

func (d *Database) CreateCourse(ctx context.Context, c models.Course) (models.Course, error) {
	applyCourseDefaults(&c)
	if err := c.Validate(); err != nil {
		return models.Course{}, err
	}
	schedule, err := json.Marshal(c.Schedule)
	if err != nil {
		return models.Course{}, wrapErr(EntityCourse, "create", 0, err)
	}
	c.CreatedAt = time.Now()
	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO courses (name, code, instructor, color, credits, semester, schedule, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Code, c.Instructor, c.Color, c.Credits, c.Semester, string(schedule), c.CreatedAt)
	if err != nil {
		return models.Course{}, wrapErr(EntityCourse, "create", 0, err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return models.Course{}, wrapErr(EntityCourse, "create", 0, err)
	}
	return c, nil
}

func (d *Database) UpdateCourse(ctx context.Context, c models.Course) (models.Course, error) {
	applyCourseDefaults(&c)
	if err := c.Validate(); err != nil {
		return models.Course{}, err
	}
	existing, err := d.GetCourse(ctx, c.ID)
	if err != nil {
		return models.Course{}, err
	}
	c.CreatedAt = existing.CreatedAt
	schedule, err := json.Marshal(c.Schedule)
	if err != nil {
		return models.Course{}, wrapErr(EntityCourse, "update", c.ID, err)
	}
	_, err = d.DB.ExecContext(ctx, `
		UPDATE courses
		SET name = ?, code = ?, instructor = ?, color = ?, credits = ?, semester = ?, schedule = ?
		WHERE id = ?`,
		c.Name, c.Code, c.Instructor, c.Color, c.Credits, c.Semester, string(schedule), c.ID)
	if err != nil {
		return models.Course{}, wrapErr(EntityCourse, "update", c.ID, err)
	}
	return c, nil
}

// DeleteCourse removes only the course row. Assignments referencing it
// are orphaned, not deleted; their history (grades, weights) survives.
func (d *Database) DeleteCourse(ctx context.Context, id int64) error {
	res, err := d.DB.ExecContext(ctx, "DELETE FROM courses WHERE id = ?", id)
	if err != nil {
		return wrapErr(EntityCourse, "delete", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(EntityCourse, id, d.knownIDs(ctx, "courses"))
	}
	return nil
}

func applyCourseDefaults(c *models.Course) {
	if c.Color == "" {
		c.Color = config.DefaultCourseColor
	}
	if c.Credits == 0 {
		c.Credits = config.DefaultCredits
	}
}

func scanCourse(row rowScanner) (models.Course, error) {
	var c models.Course
	var instructor, semester, schedule sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.Code, &instructor, &c.Color, &c.Credits, &semester, &schedule, &c.CreatedAt)
	if err != nil {
		return c, err
	}
	c.Instructor = instructor.String
	c.Semester = semester.String
	if schedule.Valid && schedule.String != "" {
		if err := json.Unmarshal([]byte(schedule.String), &c.Schedule); err != nil {
			return c, err
		}
	}
	return c, nil
}
