package semblance

import (
	"fmt"

	"github.com/likeness/semblance/engine"
)

// Procedure is the rule shape: statements that must be present (inputs),
// statements that follow (outputs), and statements that do not prevent the
// outputs (despite). The three groups are unordered.
type Procedure struct {
	inputs  engine.Group
	outputs engine.Group
	despite engine.Group
}

// NewProcedure creates a procedure from its three groups.
func NewProcedure(inputs, outputs, despite engine.Group) Procedure {
	return Procedure{inputs: inputs, outputs: outputs, despite: despite}
}

// Inputs returns the input group.
func (p Procedure) Inputs() engine.Group { return p.inputs }

// Outputs returns the output group.
func (p Procedure) Outputs() engine.Group { return p.outputs }

// Despite returns the despite group.
func (p Procedure) Despite() engine.Group { return p.despite }

// Implies reports whether p implies o.
func (p Procedure) Implies(o Procedure) bool {
	return p.ExplanationsImplication(o).Iter().Next()
}

// Means reports whether p and o have the same meaning.
func (p Procedure) Means(o Procedure) bool {
	return p.ExplanationsSameMeaning(o).Iter().Next()
}

// ExplanationsImplication yields every explanation under which p implies o:
// the inputs, then the outputs, then o's despite group against p's inputs
// and despite combined, all matched under one register threaded through the
// three comparisons.
func (p Procedure) ExplanationsImplication(o Procedure) *engine.Promise {
	pool := make(engine.Group, 0, len(p.inputs)+len(p.despite))
	pool = append(pool, p.inputs...)
	pool = append(pool, p.despite...)
	return p.inputs.ExplanationsImplication(o.inputs, nil).Then(func(in *engine.Explanation) *engine.Promise {
		return p.outputs.ExplanationsImplication(o.outputs, in.Context()).Then(func(out *engine.Explanation) *engine.Promise {
			return pool.ExplanationsImplication(o.despite, out.Context()).Then(func(desp *engine.Explanation) *engine.Promise {
				return engine.Unit(combine(engine.Implication, desp.Context(), in, out, desp))
			})
		})
	})
}

// ExplanationsSameMeaning yields every explanation under which the three
// groups of p and o pairwise mean the same under one shared register.
func (p Procedure) ExplanationsSameMeaning(o Procedure) *engine.Promise {
	return p.inputs.ExplanationsSameMeaning(o.inputs, nil).Then(func(in *engine.Explanation) *engine.Promise {
		return p.outputs.ExplanationsSameMeaning(o.outputs, in.Context()).Then(func(out *engine.Explanation) *engine.Promise {
			return p.despite.ExplanationsSameMeaning(o.despite, out.Context()).Then(func(desp *engine.Explanation) *engine.Promise {
				return engine.Unit(combine(engine.SameMeaning, desp.Context(), in, out, desp))
			})
		})
	})
}

func combine(rel engine.Relation, ctx *engine.Register, stages ...*engine.Explanation) *engine.Explanation {
	e := engine.NewExplanation(ctx).WithRelation(rel)
	for _, s := range stages {
		for _, m := range s.Matches() {
			e = e.AddMatch(m.Left, m.Right)
		}
	}
	return e
}

// GenericTerms collects the generic placeholders of all three groups, inputs
// first.
func (p Procedure) GenericTerms() []engine.Term {
	var out []engine.Term
	seen := map[string]bool{}
	for _, g := range []engine.Group{p.inputs, p.outputs, p.despite} {
		for _, t := range g.GenericTerms() {
			if seen[t.Key()] {
				continue
			}
			seen[t.Key()] = true
			out = append(out, t)
		}
	}
	return out
}

// NewContext re-specializes the procedure to another case's entities by
// substituting its generic placeholders per r.
func (p Procedure) NewContext(r *engine.Register) Procedure {
	p.inputs = p.inputs.NewContext(r)
	p.outputs = p.outputs.NewContext(r)
	p.despite = p.despite.NewContext(r)
	return p
}

func (p Procedure) String() string {
	s := fmt.Sprintf("GIVEN %s THEN %s", p.inputs, p.outputs)
	if len(p.despite) > 0 {
		s = fmt.Sprintf("%s DESPITE %s", s, p.despite)
	}
	return s
}
