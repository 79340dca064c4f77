package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/studyflow/internal/models"
)

const studentColumns = "id, name, email, phone, major, year, gpa, enrollment_date, created_at"

func (d *Database) ListStudents(ctx context.Context) ([]models.Student, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+studentColumns+" FROM students ORDER BY name ASC")
	if err != nil {
		return nil, wrapErr(EntityStudent, "list", 0, err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, wrapErr(EntityStudent, "list", 0, err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityStudent, "list", 0, err)
	}
	return students, nil
}

func (d *Database) GetStudent(ctx context.Context, id int64) (models.Student, error) {
	row := d.DB.QueryRowContext(ctx,
		"SELECT "+studentColumns+" FROM students WHERE id = ?", id)
	s, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return models.Student{}, notFound(EntityStudent, id, d.knownIDs(ctx, "students"))
	}
	if err != nil {
		return models.Student{}, wrapErr(EntityStudent, "get", id, err)
	}
	return s, nil
}

func (d *Database) CreateStudent(ctx context.Context, s models.Student) (models.Student, error) {
	if err := s.Validate(); err != nil {
		return models.Student{}, err
	}
	s.CreatedAt = time.Now()
	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO students (name, email, phone, major, year, gpa, enrollment_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.Email, s.Phone, s.Major, s.Year, s.GPA, nullTime(s.EnrollmentDate), s.CreatedAt)
	if err != nil {
		return models.Student{}, wrapErr(EntityStudent, "create", 0, err)
	}
	s.ID, err = res.LastInsertId()
	if err != nil {
		return models.Student{}, wrapErr(EntityStudent, "create", 0, err)
	}
	return s, nil
}

func (d *Database) UpdateStudent(ctx context.Context, s models.Student) (models.Student, error) {
	if err := s.Validate(); err != nil {
		return models.Student{}, err
	}
	existing, err := d.GetStudent(ctx, s.ID)
	if err != nil {
		return models.Student{}, err
	}
	s.CreatedAt = existing.CreatedAt
	_, err = d.DB.ExecContext(ctx, `
		UPDATE students
		SET name = ?, email = ?, phone = ?, major = ?, year = ?, gpa = ?, enrollment_date = ?
		WHERE id = ?`,
		s.Name, s.Email, s.Phone, s.Major, s.Year, s.GPA, nullTime(s.EnrollmentDate), s.ID)
	if err != nil {
		return models.Student{}, wrapErr(EntityStudent, "update", s.ID, err)
	}
	return s, nil
}

func (d *Database) DeleteStudent(ctx context.Context, id int64) error {
	res, err := d.DB.ExecContext(ctx, "DELETE FROM students WHERE id = ?", id)
	if err != nil {
		return wrapErr(EntityStudent, "delete", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(EntityStudent, id, d.knownIDs(ctx, "students"))
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudent(row rowScanner) (models.Student, error) {
	var s models.Student
	var phone, major sql.NullString
	var gpa sql.NullFloat64
	var enrolled sql.NullTime
	err := row.Scan(&s.ID, &s.Name, &s.Email, &phone, &major, &s.Year, &gpa, &enrolled, &s.CreatedAt)
	if err != nil {
		return s, err
	}
	s.Phone = phone.String
	s.Major = major.String
	if gpa.Valid {
		s.GPA = &gpa.Float64
	}
	if enrolled.Valid {
		s.EnrollmentDate = enrolled.Time
	}
	return s, nil
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
