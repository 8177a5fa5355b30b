package regexdfa

// epsilon labels transitions that consume no input. It is a distinguished
// value outside any practical alphabet so epsilon edges can live in the
// same table as real symbols.
const epsilon rune = -1

type stateSet map[int]struct{}

// nfa is the result of one Thompson construction. States are dense
// integers allocated by the builder that owns them; transitions are
// nondeterministic, so each (state, symbol) maps to a set of states.
type nfa struct {
	start  int
	accept int
	trans  map[int]map[rune]stateSet
}

// nfaBuilder scopes the state counter and the transition table to a
// single conversion, so independent conversions never share ids and are
// safe to run concurrently.
type nfaBuilder struct {
	nextID int
	trans  map[int]map[rune]stateSet
}

func newNFABuilder() *nfaBuilder {
	return &nfaBuilder{trans: make(map[int]map[rune]stateSet)}
}

// newState allocates a fresh id with an empty transition row, so every
// state appears as a table key even when nothing leaves it.
func (b *nfaBuilder) newState() int {
	id := b.nextID
	b.nextID++
	b.trans[id] = make(map[rune]stateSet)
	return id
}

func (b *nfaBuilder) addEdge(from int, sym rune, to int) {
	set, ok := b.trans[from][sym]
	if !ok {
		set = make(stateSet)
		b.trans[from][sym] = set
	}
	set[to] = struct{}{}
}

// build compiles the AST into a fragment with exactly one start and one
// accept state and returns the pair. Fragments never share states, which
// is what lets concat/union/star glue them together with plain epsilon
// edges.
func (b *nfaBuilder) build(n *astNode) (start, accept int) {
	switch n.op {
	case opLiteral:
		s, t := b.newState(), b.newState()
		b.addEdge(s, n.ch, t)
		return s, t
	case opEpsilon:
		s, t := b.newState(), b.newState()
		b.addEdge(s, epsilon, t)
		return s, t
	case opConcat:
		s1, t1 := b.build(n.left)
		s2, t2 := b.build(n.right)
		b.addEdge(t1, epsilon, s2)
		return s1, t2
	case opUnion:
		s, t := b.newState(), b.newState()
		s1, t1 := b.build(n.left)
		s2, t2 := b.build(n.right)
		b.addEdge(s, epsilon, s1)
		b.addEdge(s, epsilon, s2)
		b.addEdge(t1, epsilon, t)
		b.addEdge(t2, epsilon, t)
		return s, t
	case opStar:
		s, t := b.newState(), b.newState()
		s1, t1 := b.build(n.left)
		b.addEdge(s, epsilon, s1)
		b.addEdge(s, epsilon, t) // zero repetitions
		b.addEdge(t1, epsilon, s1)
		b.addEdge(t1, epsilon, t)
		return s, t
	default:
		panic("regexdfa: unknown ast op")
	}
}

// epsilonClosure returns the smallest superset of states closed under
// epsilon transitions. The closure set doubles as the visited set, so
// each state is pushed at most once.
func epsilonClosure(trans map[int]map[rune]stateSet, states stateSet) stateSet {
	closure := make(stateSet, len(states))
	stack := make([]int, 0, len(states))
	for s := range states {
		closure[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for t := range trans[s][epsilon] {
			if _, seen := closure[t]; !seen {
				closure[t] = struct{}{}
				stack = append(stack, t)
			}
		}
	}
	return closure
}
