package regexdfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func determinized(t *testing.T, pattern, alphabet string) *rawDFA {
	t.Helper()
	tree := parsed(t, pattern)
	b := newNFABuilder()
	start, accept := b.build(tree)
	return determinize(&nfa{start: start, accept: accept, trans: b.trans}, alphabetRunes(alphabet))
}

func TestDeterminizeStartIsZero(t *testing.T) {
	d := determinized(t, "a", "ab")
	assert.Equal(t, 0, d.start)
}

func TestDeterminizeTotality(t *testing.T) {
	d := determinized(t, "(a|b)*a", "ab")
	for state, row := range d.trans {
		require.Len(t, row, 2, "state %d", state)
		assert.Contains(t, row, 'a')
		assert.Contains(t, row, 'b')
	}
}

func TestDeterminizeSharedDeadState(t *testing.T) {
	d := determinized(t, "a", "ab")
	require.GreaterOrEqual(t, d.dead, 0)

	// 'b' from the start and everything past the match fall into the
	// same lazily created dead state.
	assert.Equal(t, d.dead, d.trans[d.start]['b'])
	acceptID := d.trans[d.start]['a']
	assert.Equal(t, d.dead, d.trans[acceptID]['a'])
	assert.Equal(t, d.dead, d.trans[acceptID]['b'])

	// The dead state self-loops on every symbol and never accepts.
	assert.Equal(t, d.dead, d.trans[d.dead]['a'])
	assert.Equal(t, d.dead, d.trans[d.dead]['b'])
	assert.NotContains(t, d.accept, d.dead)
}

func TestDeterminizeNoDeadStateWhenTotal(t *testing.T) {
	// (a|b)* can always consume another symbol, so no subset is empty.
	d := determinized(t, "(a|b)*", "ab")
	assert.Equal(t, -1, d.dead)
}

func TestDeterminizeInternsSubsets(t *testing.T) {
	// In a* over {a}, reading more a's keeps reproducing the same
	// subset; interning must reuse its id instead of growing the DFA.
	d := determinized(t, "a*", "a")
	require.Len(t, d.trans, 2)
	loop := d.trans[d.start]['a']
	assert.Equal(t, loop, d.trans[loop]['a'])
	assert.Contains(t, d.accept, d.start)
	assert.Contains(t, d.accept, loop)
}

func TestDeterminizeAcceptingSubsets(t *testing.T) {
	d := determinized(t, "ab", "ab")
	require.NotContains(t, d.accept, d.start)
	mid := d.trans[d.start]['a']
	end := d.trans[mid]['b']
	assert.NotContains(t, d.accept, mid)
	assert.Contains(t, d.accept, end)
}

func TestSubsetKeyCanonical(t *testing.T) {
	// Same members, different insertion history: one key.
	a := stateSet{3: {}, 1: {}, 2: {}}
	b := stateSet{2: {}, 3: {}, 1: {}}
	assert.Equal(t, subsetKey(a), subsetKey(b))
	assert.NotEqual(t, subsetKey(a), subsetKey(stateSet{1: {}, 2: {}}))
}
