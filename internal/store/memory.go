package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/akyairhashvil/studyflow/internal/models"
)

// Memory is the in-memory adapter of the record store. It mirrors the
// SQLite adapter's semantics (defaults, CompletedAt transition,
// duration derivation, not-found diagnostics) over mutex-guarded maps,
// which makes it the deterministic fixture for engine and TUI tests.
type Memory struct {
	mu          sync.Mutex
	students    map[int64]models.Student
	courses     map[int64]models.Course
	assignments map[int64]models.Assignment
	sessions    map[int64]models.StudySession
}

func NewMemory() *Memory {
	return &Memory{
		students:    make(map[int64]models.Student),
		courses:     make(map[int64]models.Course),
		assignments: make(map[int64]models.Assignment),
		sessions:    make(map[int64]models.StudySession),
	}
}

func (m *Memory) Close() error { return nil }

// nextID assigns max+1, matching the store's observable behavior of
// monotonically increasing identifiers.
func nextID[T any](records map[int64]T) int64 {
	var max int64
	for id := range records {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func sortedIDs[T any](records map[int64]T) []int64 {
	ids := make([]int64, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// --- Students ---

func (m *Memory) ListStudents(ctx context.Context) ([]models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Student, 0, len(m.students))
	for _, id := range sortedIDs(m.students) {
		out = append(out, m.students[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) GetStudent(ctx context.Context, id int64) (models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.students[id]
	if !ok {
		return models.Student{}, notFound(EntityStudent, id, sortedIDs(m.students))
	}
	return s, nil
}

func (m *Memory) CreateStudent(ctx context.Context, s models.Student) (models.Student, error) {
	if err := s.Validate(); err != nil {
		return models.Student{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = nextID(m.students)
	s.CreatedAt = time.Now()
	m.students[s.ID] = s
	return s, nil
}

func (m *Memory) UpdateStudent(ctx context.Context, s models.Student) (models.Student, error) {
	if err := s.Validate(); err != nil {
		return models.Student{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.students[s.ID]
	if !ok {
		return models.Student{}, notFound(EntityStudent, s.ID, sortedIDs(m.students))
	}
	s.CreatedAt = existing.CreatedAt
	m.students[s.ID] = s
	return s, nil
}

func (m *Memory) DeleteStudent(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.students[id]; !ok {
		return notFound(EntityStudent, id, sortedIDs(m.students))
	}
	delete(m.students, id)
	return nil
}

// --- Courses ---

func (m *Memory) ListCourses(ctx context.Context) ([]models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Course, 0, len(m.courses))
	for _, id := range sortedIDs(m.courses) {
		out = append(out, m.courses[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.courses[id]
	if !ok {
		return models.Course{}, notFound(EntityCourse, id, sortedIDs(m.courses))
	}
	return c, nil
}

func (m *Memory) CreateCourse(ctx context.Context, c models.Course) (models.Course, error) {
	applyCourseDefaults(&c)
	if err := c.Validate(); err != nil {
		return models.Course{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = nextID(m.courses)
	c.CreatedAt = time.Now()
	m.courses[c.ID] = c
	return c, nil
}

func (m *Memory) UpdateCourse(ctx context.Context, c models.Course) (models.Course, error) {
	applyCourseDefaults(&c)
	if err := c.Validate(); err != nil {
		return models.Course{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.courses[c.ID]
	if !ok {
		return models.Course{}, notFound(EntityCourse, c.ID, sortedIDs(m.courses))
	}
	c.CreatedAt = existing.CreatedAt
	m.courses[c.ID] = c
	return c, nil
}

// DeleteCourse orphans the course's assignments, same as the SQLite
// adapter.
func (m *Memory) DeleteCourse(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.courses[id]; !ok {
		return notFound(EntityCourse, id, sortedIDs(m.courses))
	}
	delete(m.courses, id)
	return nil
}

// --- Assignments ---

func (m *Memory) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assignmentsLocked(func(models.Assignment) bool { return true }), nil
}

func (m *Memory) ListAssignmentsForCourse(ctx context.Context, courseID int64) ([]models.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assignmentsLocked(func(a models.Assignment) bool { return a.CourseID == courseID }), nil
}

func (m *Memory) assignmentsLocked(keep func(models.Assignment) bool) []models.Assignment {
	out := make([]models.Assignment, 0, len(m.assignments))
	for _, id := range sortedIDs(m.assignments) {
		if a := m.assignments[id]; keep(a) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

func (m *Memory) GetAssignment(ctx context.Context, id int64) (models.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assignments[id]
	if !ok {
		return models.Assignment{}, notFound(EntityAssignment, id, sortedIDs(m.assignments))
	}
	return a, nil
}

func (m *Memory) CreateAssignment(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	applyAssignmentDefaults(&a)
	if err := a.Validate(); err != nil {
		return models.Assignment{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = nextID(m.assignments)
	a.CreatedAt = time.Now()
	a.CompletedAt = nil
	if a.Status == models.StatusCompleted {
		now := a.CreatedAt
		a.CompletedAt = &now
	}
	m.assignments[a.ID] = a
	return a, nil
}

func (m *Memory) UpdateAssignment(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	applyAssignmentDefaults(&a)
	if err := a.Validate(); err != nil {
		return models.Assignment{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.assignments[a.ID]
	if !ok {
		return models.Assignment{}, notFound(EntityAssignment, a.ID, sortedIDs(m.assignments))
	}
	a.CreatedAt = existing.CreatedAt
	a.CompletedAt = completionStamp(existing, a)
	m.assignments[a.ID] = a
	return a, nil
}

func (m *Memory) DeleteAssignment(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assignments[id]; !ok {
		return notFound(EntityAssignment, id, sortedIDs(m.assignments))
	}
	delete(m.assignments, id)
	return nil
}

// --- Sessions ---

func (m *Memory) ListSessions(ctx context.Context) ([]models.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.StudySession, 0, len(m.sessions))
	for _, id := range sortedIDs(m.sessions) {
		out = append(out, m.sessions[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EndTime.After(out[j].EndTime) })
	return out, nil
}

func (m *Memory) CreateSession(ctx context.Context, s models.StudySession) (models.StudySession, error) {
	if err := s.Validate(); err != nil {
		return models.StudySession{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = nextID(m.sessions)
	s.DurationSeconds = int(s.EndTime.Sub(s.StartTime).Seconds())
	m.sessions[s.ID] = s
	return s, nil
}
