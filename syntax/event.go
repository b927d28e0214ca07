package syntax

// event is one entry in the flat stream the Parser emits while walking
// the token list. The parser never builds a tree directly: Start/Finish
// pairs describe tree shape, Token copies one token across, and Error
// attaches a diagnostic at the current position. The Builder turns this
// stream into a green tree in a second pass.
//
// Modeled directly on rust-analyzer's parser event stream
// (grammar/expressions.rs and the surrounding event.rs design referenced
// by syntax_ptr.rs): a Start event may name a forward parent — another
// Start event, not yet closed, that should end up enclosing this one.
// This is how the grammar expresses left recursion without backtracking:
// `2 + 3` starts as a bare `2`, and only once `+ 3` is seen does the
// parser go back and say "that expr I already closed should have been
// wrapped in a BinExpr".
type eventKind uint8

const (
	evStart eventKind = iota
	evFinish
	evToken
	evError
)

type event struct {
	kind eventKind

	// evStart / evFinish
	nodeKind SyntaxKind
	// forwardParent is the index, in the parser's event slice, of another
	// evStart event that should become this node's parent once the tree
	// is built. -1 when absent. Chains of length >1 are possible: each
	// forward parent can itself point further along the chain.
	forwardParent int

	// evToken
	tokenKind SyntaxKind
	tokenText string

	// evError
	message string
	hints   []string
}
