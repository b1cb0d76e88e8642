package checkpoint

import (
	"fmt"

	"github.com/pthm/scenariolint/internal/rules"
)

// Checkpoint names, in pipeline order.
const (
	PostGeneration     = "post-generation"
	PostBlankInsertion = "post-blank-insertion"
	PostTransformation = "post-transformation"
	PreMerge           = "pre-merge"
)

// Order is the pipeline order of the checkpoints.
var Order = []string{PostGeneration, PostBlankInsertion, PostTransformation, PreMerge}

// Each stage runs everything the previous stage ran.
var plans = map[string][]string{
	PostGeneration: {
		rules.NameCountConsistency,
		rules.NameRequiredFields,
	},
	PostBlankInsertion: {
		rules.NameCountConsistency,
		rules.NameRequiredFields,
		rules.NameCategoryEnum,
		rules.NameContentBounds,
	},
	PostTransformation: {
		rules.NameCountConsistency,
		rules.NameRequiredFields,
		rules.NameCategoryEnum,
		rules.NameContentBounds,
		rules.NameReferentialIntegrity,
		rules.NameSchemaExclusivity,
		rules.NameTerminology,
	},
	PreMerge: {
		rules.NameCountConsistency,
		rules.NameRequiredFields,
		rules.NameCategoryEnum,
		rules.NameContentBounds,
		rules.NameReferentialIntegrity,
		rules.NameSchemaExclusivity,
		rules.NameTerminology,
	},
}

var descriptions = map[string]string{
	PostGeneration:     "after dialogue generation: blanks and answers line up, required fields present",
	PostBlankInsertion: "after blanks are inserted: categories and content bounds",
	PostTransformation: "after feedback transformation: references, schema generations, terminology",
	PreMerge:           "before merging: the full matrix, naturalness when strict, external type-check",
}

// Plan returns the rule names a checkpoint runs. Strict mode adds the
// naturalness check to pre-merge.
func Plan(name string, strict bool) ([]string, error) {
	plan, ok := plans[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCheckpoint, name)
	}
	out := append([]string(nil), plan...)
	if name == PreMerge && strict {
		out = append(out, rules.NameAnswerNaturalness)
	}
	return out, nil
}

// Describe returns a one-line description of a checkpoint.
func Describe(name string) string {
	return descriptions[name]
}
