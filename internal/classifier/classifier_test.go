package classifier

import (
	"testing"

	"github.com/pthm/scenariolint/internal/model"
	"github.com/pthm/scenariolint/internal/model/modeltest"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		unit           func() model.ContentUnit
		wantGen        Generation
		wantRenderable bool
	}{
		{
			name:           "current unit",
			unit:           modeltest.CurrentUnit,
			wantGen:        Current,
			wantRenderable: true,
		},
		{
			name:           "legacy unit",
			unit:           modeltest.LegacyUnit,
			wantGen:        Legacy,
			wantRenderable: true,
		},
		{
			name: "freshly generated unit",
			unit: func() model.ContentUnit {
				u := modeltest.LegacyUnit()
				u.Feedback = nil
				return u
			},
			wantGen:        Undetermined,
			wantRenderable: true,
		},
		{
			name: "both generations",
			unit: func() model.ContentUnit {
				u := modeltest.CurrentUnit()
				u.Feedback = modeltest.LegacyUnit().Feedback
				return u
			},
			wantGen:        Mixed,
			wantRenderable: true,
		},
		{
			name: "mapping without current feedback",
			unit: func() model.ContentUnit {
				u := modeltest.CurrentUnit()
				u.ChunkFeedback = nil
				u.PatternSummary = nil
				u.ActiveRecall = nil
				return u
			},
			wantGen:        Current,
			wantRenderable: false,
		},
		{
			name: "legacy feedback with orphan summary",
			unit: func() model.ContentUnit {
				u := modeltest.LegacyUnit()
				u.PatternSummary = modeltest.CurrentUnit().PatternSummary
				return u
			},
			wantGen:        Mixed,
			wantRenderable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.unit()
			got := Classify(&u)
			if got.Generation != tt.wantGen {
				t.Errorf("Generation = %s, want %s", got.Generation, tt.wantGen)
			}
			if got.Renderable() != tt.wantRenderable {
				t.Errorf("Renderable() = %v, want %v", got.Renderable(), tt.wantRenderable)
			}
		})
	}
}

func TestGenerationString(t *testing.T) {
	tests := []struct {
		gen      Generation
		expected string
	}{
		{Undetermined, "undetermined"},
		{Legacy, "legacy"},
		{Current, "current"},
		{Mixed, "mixed"},
		{Generation(42), "undetermined"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.gen.String(); got != tt.expected {
				t.Errorf("Generation.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}
