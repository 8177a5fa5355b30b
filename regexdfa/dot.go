package regexdfa

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteDOT writes a Graphviz representation of the automaton to w.
// Accepting states are doublecircles. Output order is deterministic:
// states ascending, symbols ascending within each row.
func (d *DFA) WriteDOT(w io.Writer) error {
	var buf strings.Builder
	buf.WriteString("digraph DFA {\n")
	buf.WriteString("    rankdir=LR;\n")
	for _, s := range d.States() {
		shape := "circle"
		if d.isAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&buf, "    q%d [shape=%s];\n", s, shape)
		row := d.Transitions[s]
		for _, sym := range sortedSymbols(row) {
			fmt.Fprintf(&buf, "    q%d -> q%d [label=%q];\n", s, row[sym], string(sym))
		}
	}
	fmt.Fprintf(&buf, "    _start [shape=point]; _start -> q%d;\n", d.StartState)
	buf.WriteString("}\n")
	_, err := io.WriteString(w, buf.String())
	return err
}

func (d *DFA) isAccept(state int) bool {
	for _, s := range d.AcceptStates {
		if s == state {
			return true
		}
	}
	return false
}

func sortedSymbols(row map[rune]int) []rune {
	symbols := make([]rune, 0, len(row))
	for sym := range row {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
