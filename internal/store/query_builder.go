package store

import (
	"fmt"
	"strings"
)

const assignmentColumns = "id, title, description, course_id, due_date, priority, status, weight, grade, created_at, completed_at"

type AssignmentQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewAssignmentQuery() *AssignmentQuery {
	return &AssignmentQuery{columns: assignmentColumns}
}

func (q *AssignmentQuery) Where(filter string, args ...interface{}) *AssignmentQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *AssignmentQuery) WhereCourse(courseID int64) *AssignmentQuery {
	return q.Where("course_id = ?", courseID)
}

func (q *AssignmentQuery) WhereStatus(status string) *AssignmentQuery {
	return q.Where("status = ?", status)
}

func (q *AssignmentQuery) OrderBy(orderBy string) *AssignmentQuery {
	q.orderBy = orderBy
	return q
}

func (q *AssignmentQuery) Limit(limit int) *AssignmentQuery {
	q.limit = limit
	return q
}

func (q *AssignmentQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM assignments", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
