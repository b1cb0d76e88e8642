package rules

import (
	"github.com/pthm/scenariolint/internal/classifier"
	"github.com/pthm/scenariolint/internal/config"
	"github.com/pthm/scenariolint/internal/model"
)

// Severity is the two-tier finding level. Errors block a checkpoint;
// warnings are for human review.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Finding kinds reported by the answer-naturalness rule.
const (
	KindStructure = "structure"
	KindSemantic  = "semantic"
	KindRegister  = "register"
)

// Issue is a single finding.
type Issue struct {
	Rule     string
	Severity Severity
	Message  string
	UnitID   string
	// Field is the record path the finding refers to, e.g. "chunk_feedback[2].examples".
	Field string
	// Kind optionally sub-classifies a finding (structure, semantic, register).
	Kind    string
	Context string
}

// UnitContext provides a single unit and its classification to rules.
type UnitContext struct {
	Unit   *model.ContentUnit
	Schema classifier.Classification
	Config *config.Config
}

// NewUnitContext classifies u and bundles it with cfg.
func NewUnitContext(u *model.ContentUnit, cfg *config.Config) *UnitContext {
	return &UnitContext{
		Unit:   u,
		Schema: classifier.Classify(u),
		Config: cfg,
	}
}

// Rule defines the interface for content checks
type Rule interface {
	// Name returns the unique identifier for this rule
	Name() string

	// Description returns a human-readable description
	Description() string

	// Check evaluates one unit. Rules never fail; every problem becomes an
	// issue in the returned result.
	Check(ctx *UnitContext) Result
}
