package regexdfa

// block is one group of states the refinement has not yet told apart.
// Blocks are compared by pointer, which is what lets the worklist hold
// the same block the partition holds.
type block struct {
	states stateSet
}

// minimize collapses equivalent DFA states by partition refinement and
// renumbers the blocks into a fresh automaton. The input table may be
// partial; missing (state, symbol) entries become self-loops before
// refinement so it always operates on a total function.
func minimize(trans map[int]map[rune]int, start int, accept stateSet, alphabet []rune) (map[int]map[rune]int, int, stateSet) {
	// Collect every state, including ones appearing only as targets.
	states := make(stateSet, len(trans))
	for s := range trans {
		states[s] = struct{}{}
	}
	for _, row := range trans {
		for _, t := range row {
			states[t] = struct{}{}
		}
	}
	for s := range states {
		row := trans[s]
		if row == nil {
			row = make(map[rune]int, len(alphabet))
			trans[s] = row
		}
		for _, sym := range alphabet {
			if _, ok := row[sym]; !ok {
				row[sym] = s
			}
		}
	}

	// Initial partition: accepting vs non-accepting, empty parts omitted.
	acc := &block{states: make(stateSet)}
	non := &block{states: make(stateSet)}
	for s := range states {
		if _, ok := accept[s]; ok {
			acc.states[s] = struct{}{}
		} else {
			non.states[s] = struct{}{}
		}
	}
	var partition []*block
	if len(acc.states) > 0 {
		partition = append(partition, acc)
	}
	if len(non.states) > 0 {
		partition = append(partition, non)
	}
	work := append([]*block(nil), partition...)

	for len(work) > 0 {
		a := work[len(work)-1]
		work = work[:len(work)-1]
		for _, sym := range alphabet {
			// x is the preimage of a under sym.
			x := make(stateSet)
			for s := range states {
				if _, ok := a.states[trans[s][sym]]; ok {
					x[s] = struct{}{}
				}
			}
			if len(x) == 0 {
				continue
			}
			refined := make([]*block, 0, len(partition)+1)
			for _, y := range partition {
				inter := make(stateSet)
				diff := make(stateSet)
				for s := range y.states {
					if _, ok := x[s]; ok {
						inter[s] = struct{}{}
					} else {
						diff[s] = struct{}{}
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					refined = append(refined, y)
					continue
				}
				yi := &block{states: inter}
				yd := &block{states: diff}
				refined = append(refined, yi, yd)
				// A queued block must be replaced by both parts;
				// otherwise queueing the smaller part is enough.
				if i := blockIndex(work, y); i >= 0 {
					work = append(work[:i], work[i+1:]...)
					work = append(work, yi, yd)
				} else if len(inter) <= len(diff) {
					work = append(work, yi)
				} else {
					work = append(work, yd)
				}
			}
			partition = refined
		}
	}

	// Each block becomes one state. Any representative works for the
	// transitions: refinement only stops once every member of a block
	// agrees on the destination block for every symbol.
	blockID := make(map[int]int, len(states))
	for i, y := range partition {
		for s := range y.states {
			blockID[s] = i
		}
	}
	minTrans := make(map[int]map[rune]int, len(partition))
	for i, y := range partition {
		var rep int
		for s := range y.states {
			rep = s
			break
		}
		row := make(map[rune]int, len(alphabet))
		for _, sym := range alphabet {
			row[sym] = blockID[trans[rep][sym]]
		}
		minTrans[i] = row
	}
	minAccept := make(stateSet, len(accept))
	for s := range accept {
		minAccept[blockID[s]] = struct{}{}
	}
	return minTrans, blockID[start], minAccept
}

func blockIndex(blocks []*block, b *block) int {
	for i, x := range blocks {
		if x == b {
			return i
		}
	}
	return -1
}
