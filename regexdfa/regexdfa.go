// Package regexdfa compiles regular expressions over a finite alphabet
// into minimal deterministic finite automata.
//
// The pipeline is the classic one: parse the pattern, build a Thompson
// NFA, determinize it by subset construction (introducing an explicit
// dead state so the transition function is total), then minimize by
// partition refinement. Supported syntax is literals, grouping,
// alternation '|' and Kleene star '*'; nothing else.
package regexdfa

import (
	"encoding/json"
	"sort"
	"strconv"
)

// DFA is the minimized automaton returned by Convert. Transitions form a
// total function: every state has exactly one successor for every symbol
// of the conversion alphabet. Dead states are non-accepting states that
// transition to themselves on every symbol; no string leads from one to
// acceptance.
type DFA struct {
	StartState   int
	AcceptStates []int // sorted
	DeadStates   []int // sorted
	Transitions  map[int]map[rune]int
	Regex        string // the pattern the automaton was built from
}

// Convert compiles pattern into a minimal DFA over the given alphabet.
// Alphabet order is fixed per call and drives construction, so repeated
// calls with the same arguments yield structurally identical automata.
// Duplicate symbols are ignored after their first occurrence. The only
// error is a *SyntaxError from the parser.
func Convert(pattern, alphabet string) (*DFA, error) {
	tree, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	symbols := alphabetRunes(alphabet)

	b := newNFABuilder()
	start, accept := b.build(tree)
	m := &nfa{start: start, accept: accept, trans: b.trans}

	raw := determinize(m, symbols)
	minTrans, minStart, minAccept := minimize(raw.trans, raw.start, raw.accept, symbols)

	return &DFA{
		StartState:   minStart,
		AcceptStates: sortedStates(minAccept),
		DeadStates:   deadStates(minTrans, minAccept),
		Transitions:  minTrans,
		Regex:        pattern,
	}, nil
}

// MustConvert is Convert for patterns known to be valid; it panics on a
// syntax error.
func MustConvert(pattern, alphabet string) *DFA {
	d, err := Convert(pattern, alphabet)
	if err != nil {
		panic(err)
	}
	return d
}

// Accepts walks the automaton over input and reports whether it ends in
// an accepting state. A rune outside the conversion alphabet has no
// transition anywhere, so it rejects.
func (d *DFA) Accepts(input string) bool {
	state := d.StartState
	for _, sym := range input {
		next, ok := d.Transitions[state][sym]
		if !ok {
			return false
		}
		state = next
	}
	for _, s := range d.AcceptStates {
		if s == state {
			return true
		}
	}
	return false
}

// States returns the automaton's state ids in ascending order.
func (d *DFA) States() []int {
	ids := make([]int, 0, len(d.Transitions))
	for s := range d.Transitions {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	return ids
}

// MarshalJSON encodes the automaton as the snake_case object consumers
// of this engine expect: states as numbers, transition rows keyed by
// symbol.
func (d *DFA) MarshalJSON() ([]byte, error) {
	rows := make(map[string]map[string]int, len(d.Transitions))
	for state, row := range d.Transitions {
		enc := make(map[string]int, len(row))
		for sym, to := range row {
			enc[string(sym)] = to
		}
		rows[strconv.Itoa(state)] = enc
	}
	return json.Marshal(struct {
		StartState   int                       `json:"start_state"`
		AcceptStates []int                     `json:"accept_states"`
		DeadStates   []int                     `json:"dead_states"`
		Transitions  map[string]map[string]int `json:"transitions"`
		Regex        string                    `json:"regex"`
	}{d.StartState, d.AcceptStates, d.DeadStates, rows, d.Regex})
}

// deadStates classifies states of the minimized automaton: dead means
// non-accepting with every outgoing transition a self-loop. This is a
// derived property of the final table, not a tag carried over from
// determinization. Over an empty alphabet the loop condition is vacuous,
// so every non-accepting state counts as dead.
func deadStates(trans map[int]map[rune]int, accept stateSet) []int {
	dead := make([]int, 0)
	for s, row := range trans {
		if _, ok := accept[s]; ok {
			continue
		}
		selfLooping := true
		for _, t := range row {
			if t != s {
				selfLooping = false
				break
			}
		}
		if selfLooping {
			dead = append(dead, s)
		}
	}
	sort.Ints(dead)
	return dead
}

func sortedStates(set stateSet) []int {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	return ids
}

// alphabetRunes fixes the symbol iteration order for one conversion:
// input order, first occurrence wins.
func alphabetRunes(alphabet string) []rune {
	seen := make(map[rune]struct{}, len(alphabet))
	symbols := make([]rune, 0, len(alphabet))
	for _, r := range alphabet {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		symbols = append(symbols, r)
	}
	return symbols
}
