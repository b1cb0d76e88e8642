package rules

import "fmt"

// Registry holds all registered rules
type Registry struct {
	rules []Rule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make([]Rule, 0),
	}
}

// Register adds a rule to the registry
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns all registered rules in registration order
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Get returns a rule by name
func (r *Registry) Get(name string) Rule {
	for _, rule := range r.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// Select returns the named rules in the order given. Unknown names are an error.
func (r *Registry) Select(names ...string) ([]Rule, error) {
	selected := make([]Rule, 0, len(names))
	for _, name := range names {
		rule := r.Get(name)
		if rule == nil {
			return nil, fmt.Errorf("unknown rule: %s", name)
		}
		selected = append(selected, rule)
	}
	return selected, nil
}

// Rule names, as used by checkpoint plans.
const (
	NameCountConsistency     = "count-consistency"
	NameRequiredFields       = "required-fields"
	NameCategoryEnum         = "category-enum"
	NameContentBounds        = "content-bounds"
	NameReferentialIntegrity = "referential-integrity"
	NameSchemaExclusivity    = "schema-exclusivity"
	NameTerminology          = "terminology"
	NameAnswerNaturalness    = "answer-naturalness"
)

// DefaultRegistry returns a registry with all default rules
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Hard invariants
	r.Register(&CountConsistencyRule{})
	r.Register(&RequiredFieldsRule{})
	r.Register(&CategoryEnumRule{})
	r.Register(&ReferentialIntegrityRule{})
	r.Register(&SchemaExclusivityRule{})

	// Content quality heuristics
	r.Register(&ContentBoundsRule{})
	r.Register(&TerminologyRule{})
	r.Register(&AnswerNaturalnessRule{})

	return r
}
