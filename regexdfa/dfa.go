package regexdfa

import (
	"fmt"
	"sort"
)

// rawDFA is the determinized automaton before minimization. Transitions
// are total over the alphabet: subsets with no successor go to a single
// shared dead state.
type rawDFA struct {
	start  int
	accept stateSet
	dead   int // -1 when every subset had a successor
	trans  map[int]map[rune]int
}

// determinize runs the subset construction. Each reachable set of NFA
// states becomes one DFA state; sets are interned under a canonical
// sorted-id key so the same subset is always recognized regardless of
// insertion order. Discovery order assigns ids, starting from 0 for the
// closure of the NFA start state.
func determinize(m *nfa, alphabet []rune) *rawDFA {
	startSet := epsilonClosure(m.trans, stateSet{m.start: {}})
	d := &rawDFA{
		start:  0,
		accept: make(stateSet),
		dead:   -1,
		trans:  make(map[int]map[rune]int),
	}
	ids := map[string]int{subsetKey(startSet): 0}
	if _, ok := startSet[m.accept]; ok {
		d.accept[0] = struct{}{}
	}
	queue := []stateSet{startSet}
	queueIDs := []int{0}
	nextID := 1

	for i := 0; i < len(queue); i++ {
		current := queue[i]
		row := make(map[rune]int, len(alphabet))
		d.trans[queueIDs[i]] = row
		for _, sym := range alphabet {
			move := make(stateSet)
			for s := range current {
				for t := range m.trans[s][sym] {
					move[t] = struct{}{}
				}
			}
			next := epsilonClosure(m.trans, move)
			if len(next) == 0 {
				// Lazily create one dead state and reuse it for
				// every undefined transition.
				if d.dead < 0 {
					d.dead = nextID
					nextID++
					d.trans[d.dead] = make(map[rune]int, len(alphabet))
				}
				row[sym] = d.dead
				continue
			}
			key := subsetKey(next)
			id, ok := ids[key]
			if !ok {
				id = nextID
				nextID++
				ids[key] = id
				if _, acc := next[m.accept]; acc {
					d.accept[id] = struct{}{}
				}
				queue = append(queue, next)
				queueIDs = append(queueIDs, id)
			}
			row[sym] = id
		}
	}

	// The dead state is closed under self-loops for every symbol.
	if d.dead >= 0 {
		for _, sym := range alphabet {
			d.trans[d.dead][sym] = d.dead
		}
	}
	return d
}

// subsetKey is the interning key for a set of NFA states.
func subsetKey(set stateSet) string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	return fmt.Sprint(ids)
}
