package wellness

import (
	"math"
	"testing"

	"github.com/uvishwakchander/NeuroX2/internal/store"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		hours       int
		tasks       int
		breaks      int
		want        float64
	}{
		{"long day no breaks", 8, 2, 0, 7.0},
		{"steady day", 4, 1, 1, 1.5},
		{"boundary high", 6, 0, 0, 6.0},
		{"zero everything", 0, 0, 0, 0.0},
		{"tasks drive score negative", 0, 10, 0, -5.0},
		{"many breaks", 8, 0, 7, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.hours, tt.tasks, tt.breaks)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%d, %d, %d) = %v, want %v", tt.hours, tt.tasks, tt.breaks, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{7.0, RiskHigh},
		{6.0, RiskHigh}, // inclusive lower bound
		{5.99, RiskModerate},
		{3.0, RiskModerate}, // inclusive lower bound
		{2.99, RiskBalanced},
		{1.5, RiskBalanced},
		{0, RiskBalanced},
		{-50, RiskBalanced}, // no floor: deeply negative is still Balanced
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestAssessRecordsHistory(t *testing.T) {
	history := store.NewMoodStore()
	assessor := NewAssessor(history)

	assessment := assessor.Assess(8, 2, 0, "tired")

	if assessment.Level != RiskHigh {
		t.Errorf("Expected High risk, got %v", assessment.Level)
	}
	if assessment.Score != 7.0 {
		t.Errorf("Expected score 7.0, got %v", assessment.Score)
	}
	if assessment.Mood != "tired" {
		t.Errorf("Expected mood 'tired', got '%s'", assessment.Mood)
	}
	if assessment.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}

	if history.Len() != 1 {
		t.Fatalf("Expected 1 history record, got %d", history.Len())
	}
	rec := history.Tail(1)[0]
	if rec.Status != "High" {
		t.Errorf("Expected recorded status 'High', got '%s'", rec.Status)
	}
	if rec.BurnoutScore == nil || *rec.BurnoutScore != 7.0 {
		t.Errorf("Expected recorded score 7.0, got %v", rec.BurnoutScore)
	}
	if rec.Mood != "tired" {
		t.Errorf("Expected recorded mood 'tired', got '%s'", rec.Mood)
	}
}

func TestAssessStoresUnroundedScore(t *testing.T) {
	history := store.NewMoodStore()
	assessor := NewAssessor(history)

	// 1/3 is periodic; the stored value must keep full precision.
	assessment := assessor.Assess(1, 0, 2, "ok")

	want := 1.0 / 3.0
	if math.Abs(assessment.Score-want) > 1e-12 {
		t.Errorf("Expected unrounded score %v, got %v", want, assessment.Score)
	}
	rec := history.Tail(1)[0]
	if math.Abs(*rec.BurnoutScore-want) > 1e-12 {
		t.Errorf("Expected unrounded stored score %v, got %v", want, *rec.BurnoutScore)
	}
}

func TestRiskLevelString(t *testing.T) {
	tests := []struct {
		level RiskLevel
		want  string
	}{
		{RiskBalanced, "Balanced"},
		{RiskModerate, "Moderate"},
		{RiskHigh, "High"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestDisplaySeparatedFromTag(t *testing.T) {
	// The classification tag stays plain; glyphs live only in the display label.
	for _, level := range []RiskLevel{RiskBalanced, RiskModerate, RiskHigh} {
		if DisplayLabel(level) == "" {
			t.Errorf("DisplayLabel(%v) should not be empty", level)
		}
		if Suggestion(level) == "" {
			t.Errorf("Suggestion(%v) should not be empty", level)
		}
		if DisplayLabel(level) == level.String() {
			t.Errorf("display label for %v should differ from the plain tag", level)
		}
	}
}
