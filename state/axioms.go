package state

import "github.com/axiomplan/planner/task"

// axiomLayer is every axiom whose derived variable belongs to one stratum,
// evaluated together to a fixpoint before the next (higher) layer starts.
type axiomLayer struct {
	layer  int
	axioms []task.Axiom
}

// buildAxiomLayers groups axioms by the axiom layer of the variable their
// (first) effect assigns, then sorts layers ascending. This mirrors §4.1's
// "fixed total ordering on axiom layers (ascending) until a layer produces
// no change."
func buildAxiomLayers(axioms []task.Axiom, vars []task.Variable) []axiomLayer {
	byLayer := make(map[int][]task.Axiom)
	for _, ax := range axioms {
		if len(ax.Effects) == 0 {
			continue
		}
		layer := vars[ax.Effects[0].Fact.Var].AxiomLayer
		byLayer[layer] = append(byLayer[layer], ax)
	}

	layers := make([]int, 0, len(byLayer))
	for l := range byLayer {
		layers = append(layers, l)
	}
	// Ascending insertion sort; axiom layer counts are small.
	for i := 1; i < len(layers); i++ {
		for j := i; j > 0 && layers[j-1] > layers[j]; j-- {
			layers[j-1], layers[j] = layers[j], layers[j-1]
		}
	}

	result := make([]axiomLayer, len(layers))
	for i, l := range layers {
		result[i] = axiomLayer{layer: l, axioms: byLayer[l]}
	}
	return result
}

// evaluateAxioms applies axioms to values in ascending layer order, each
// layer iterated to a fixpoint (no fact changes during a full pass) before
// moving to the next layer.
func evaluateAxioms(layers []axiomLayer, values []int) {
	for _, layer := range layers {
		for {
			changed := false
			for _, ax := range layer.axioms {
				if !satisfiesAll(values, ax.Preconditions) {
					continue
				}
				for _, eff := range ax.Effects {
					if !satisfiesAll(values, eff.Conditions) {
						continue
					}
					if values[eff.Fact.Var] != eff.Fact.Value {
						values[eff.Fact.Var] = eff.Fact.Value
						changed = true
					}
				}
			}
			if !changed {
				break
			}
		}
	}
}

func satisfiesAll(values []int, facts []task.Fact) bool {
	for _, f := range facts {
		if values[f.Var] != f.Value {
			return false
		}
	}
	return true
}
