package regexdfa

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SyntaxError reports a pattern the grammar cannot consume: unbalanced
// parentheses, a '*' with no preceding atom, or trailing input after the
// top-level expression.
type SyntaxError struct {
	Pattern string
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in pattern %q: %s", e.Pattern, e.Msg)
}

// Grammar, highest to lowest binding power:
//
//	atom   := Char | '(' union ')'
//	repeat := atom '*'*          each star wraps the previous result, so
//	                             a** is legal and inert
//	concat := repeat*            empty juxtaposition yields epsilon
//	union  := concat ('|' concat)*
//
// Any rune other than ( ) | * is a literal. Literals are not checked
// against the conversion alphabet; a symbol outside it simply never
// matches.

type unionExpr struct {
	Alts []*concatExpr `parser:"@@ ( '|' @@ )*"`
}

type concatExpr struct {
	Factors []*repeatExpr `parser:"@@*"`
}

type repeatExpr struct {
	Atom  *atomExpr `parser:"@@"`
	Stars []string  `parser:"( @'*' )*"`
}

type atomExpr struct {
	Group *unionExpr `parser:"'(' @@ ')'"`
	Lit   *string    `parser:"| @Char"`
}

var (
	patternLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
		{Name: "Pipe", Pattern: `\|`},
		{Name: "Star", Pattern: `\*`},
		{Name: "Char", Pattern: `(?s).`},
	})
	patternParser = participle.MustBuild[unionExpr](
		participle.Lexer(patternLexer),
	)
)

// parsePattern turns a pattern into its AST. The parser consumes the
// whole input; leftover tokens (as in "a)") are a SyntaxError.
func parsePattern(pattern string) (*astNode, error) {
	expr, err := patternParser.ParseString("", pattern)
	if err != nil {
		return nil, &SyntaxError{Pattern: pattern, Msg: err.Error()}
	}
	return expr.lower(), nil
}

// Lowering folds the parse tree into the tagged astNode variant.
// Concat and union are left-associative, matching construction order.

func (u *unionExpr) lower() *astNode {
	if len(u.Alts) == 0 {
		return epsilonNode()
	}
	node := u.Alts[0].lower()
	for _, alt := range u.Alts[1:] {
		node = &astNode{op: opUnion, left: node, right: alt.lower()}
	}
	return node
}

func (c *concatExpr) lower() *astNode {
	if len(c.Factors) == 0 {
		return epsilonNode()
	}
	node := c.Factors[0].lower()
	for _, f := range c.Factors[1:] {
		node = &astNode{op: opConcat, left: node, right: f.lower()}
	}
	return node
}

func (r *repeatExpr) lower() *astNode {
	node := r.Atom.lower()
	for range r.Stars {
		node = &astNode{op: opStar, left: node}
	}
	return node
}

func (a *atomExpr) lower() *astNode {
	if a.Group != nil {
		return a.Group.lower()
	}
	return literalNode([]rune(*a.Lit)[0])
}
