package grades

import (
	"math"
	"testing"

	"github.com/akyairhashvil/studyflow/internal/models"
	"github.com/akyairhashvil/studyflow/internal/testutil"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Average != 0 {
		t.Fatalf("expected zero average, got %f", s.Average)
	}
	if s.CompletedWeight != 0 {
		t.Fatalf("expected zero completed weight, got %f", s.CompletedWeight)
	}
	if s.RemainingWeight != 100 {
		t.Fatalf("expected remaining weight 100, got %f", s.RemainingWeight)
	}
}

func TestSummarizeWeightedAverage(t *testing.T) {
	assignments := []models.Assignment{
		testutil.NewAssignment().WithWeight(30).Completed(90).Build(),
		testutil.NewAssignment().WithWeight(20).Completed(70).Build(),
		testutil.NewAssignment().WithWeight(50).Build(),
	}

	s := Summarize(assignments)
	if !almostEqual(s.Average, 82.0) {
		t.Fatalf("expected average 82.0, got %f", s.Average)
	}
	if !almostEqual(s.CompletedWeight, 50) {
		t.Fatalf("expected completed weight 50, got %f", s.CompletedWeight)
	}
	if !almostEqual(s.RemainingWeight, 50) {
		t.Fatalf("expected remaining weight 50, got %f", s.RemainingWeight)
	}
}

func TestSummarizeIgnoresUngradedCompleted(t *testing.T) {
	assignments := []models.Assignment{
		testutil.NewAssignment().WithWeight(40).Completed(80).Build(),
		testutil.NewAssignment().WithWeight(60).CompletedUngraded().Build(),
	}

	s := Summarize(assignments)
	if !almostEqual(s.Average, 80) {
		t.Fatalf("expected average 80, got %f", s.Average)
	}
	if !almostEqual(s.CompletedWeight, 40) {
		t.Fatalf("expected completed weight 40, got %f", s.CompletedWeight)
	}
}

func TestSummarizeOverweightCourse(t *testing.T) {
	assignments := []models.Assignment{
		testutil.NewAssignment().WithWeight(80).Completed(100).Build(),
		testutil.NewAssignment().WithWeight(50).Completed(50).Build(),
	}

	s := Summarize(assignments)
	if !almostEqual(s.CompletedWeight, 130) {
		t.Fatalf("expected completed weight to pass through unclamped, got %f", s.CompletedWeight)
	}
	if s.RemainingWeight != 0 {
		t.Fatalf("expected remaining weight floored at 0, got %f", s.RemainingWeight)
	}
}

func TestSummarizeAverageWithinGradeBounds(t *testing.T) {
	grades := []float64{0, 37.5, 62, 100}
	weights := []int{5, 15, 30, 50}
	var assignments []models.Assignment
	for i, g := range grades {
		assignments = append(assignments, testutil.NewAssignment().WithWeight(weights[i]).Completed(g).Build())
	}

	s := Summarize(assignments)
	if s.Average < 0 || s.Average > 100 {
		t.Fatalf("average %f escaped the grade range", s.Average)
	}
	if !almostEqual(s.CompletedWeight+s.RemainingWeight, 100) {
		t.Fatalf("weights do not close to 100: completed %f remaining %f", s.CompletedWeight, s.RemainingWeight)
	}
}

func TestCompletionRateByStatusOnly(t *testing.T) {
	assignments := []models.Assignment{
		testutil.NewAssignment().Completed(95).Build(),
		testutil.NewAssignment().CompletedUngraded().Build(),
		testutil.NewAssignment().Build(),
	}

	rate := CompletionRate(assignments)
	if !almostEqual(rate, 200.0/3.0) {
		t.Fatalf("expected rate 66.67, got %f", rate)
	}
	if CompletionRate(nil) != 0 {
		t.Fatalf("expected zero rate for empty input")
	}
}

func TestCompletionRateMonotonic(t *testing.T) {
	assignments := []models.Assignment{
		testutil.NewAssignment().Build(),
		testutil.NewAssignment().Build(),
		testutil.NewAssignment().Build(),
	}
	prev := CompletionRate(assignments)
	for i := range assignments {
		assignments[i].Status = models.StatusCompleted
		rate := CompletionRate(assignments)
		if rate <= prev {
			t.Fatalf("completing assignment %d did not raise the rate: %f -> %f", i, prev, rate)
		}
		prev = rate
	}
	if !almostEqual(prev, 100) {
		t.Fatalf("expected 100%% once everything is completed, got %f", prev)
	}
}

func TestGPAFlatMean(t *testing.T) {
	assignments := []models.Assignment{
		testutil.NewAssignment().WithWeight(5).Completed(100).Build(),
		testutil.NewAssignment().WithWeight(95).Completed(50).Build(),
		testutil.NewAssignment().Build(),
	}

	// Weights do not matter at the GPA level: (100+50)/2 / 100 * 4.
	gpa := GPA(assignments)
	if !almostEqual(gpa, 3.0) {
		t.Fatalf("expected GPA 3.0, got %f", gpa)
	}
}

func TestGPANoGradedAssignments(t *testing.T) {
	assignments := []models.Assignment{
		testutil.NewAssignment().Build(),
		testutil.NewAssignment().CompletedUngraded().Build(),
	}
	if gpa := GPA(assignments); gpa != 0 {
		t.Fatalf("expected zero GPA with nothing graded, got %f", gpa)
	}
}

func TestForCoursePreservesOrder(t *testing.T) {
	assignments := []models.Assignment{
		testutil.NewAssignment().WithID(1).WithCourse(1).Build(),
		testutil.NewAssignment().WithID(2).WithCourse(2).Build(),
		testutil.NewAssignment().WithID(3).WithCourse(1).Build(),
	}

	got := ForCourse(1, assignments)
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments for course 1, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("expected input order preserved, got IDs %d, %d", got[0].ID, got[1].ID)
	}
}
