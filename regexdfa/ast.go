package regexdfa

type astOp int

const (
	opEpsilon astOp = iota // matches the empty string
	opLiteral
	opConcat
	opUnion
	opStar
)

type astNode struct {
	op    astOp
	left  *astNode
	right *astNode

	ch rune // for opLiteral
}

func literalNode(r rune) *astNode { return &astNode{op: opLiteral, ch: r} }

func epsilonNode() *astNode { return &astNode{op: opEpsilon} }
