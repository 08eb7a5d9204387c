// Package pipeline splits one already-tokenized input line into
// dispatchable stages at '|' tokens and extracts the endpoint file
// redirections ("< path", "> path"), then runs the stages in sequence with
// each stage's stdout buffered into the next stage's stdin (§4.6).
package pipeline

import "github.com/aiseeq/cmdsh/pkg/cmderr"

// Stages is the result of splitting one line: one token vector per stage,
// plus the optional file paths the pipeline's own stdin/stdout are
// redirected to.
type Stages struct {
	Tokens     [][]string
	StdinPath  string
	StdoutPath string
}

// DefaultPrecedence recognizes '<'/'>' ahead of '|': redirection operators
// are extracted line-wide before the token vector is split into stages,
// regardless of which stage they sit next to.
const DefaultPrecedence = "<>|"

// SplitStages splits tokens (already produced by token.Parse) at '|'
// operators and extracts at most one leading "< path" and one trailing
// "> path". An operator is recognized as a token's leading run of '|'/'<'/
// '>' runes, so both the spaced form ("a", "|", "b") and the attached form
// ("a", "|b") split the same way; a pipe/redirect character occurring
// anywhere but a token's start is left untouched, a literal.
//
// precedence governs whether '<'/'>' are recognized line-wide before the
// '|' split (the default, DefaultPrecedence) or only inside the resulting
// first/last stage after the line has already been split on '|' —
// toggling it changes how a line mixing redirection and pipe operators
// groups.
func SplitStages(tokens []string, precedence string) (Stages, error) {
	parts := explode(tokens)
	if redirectsWinFirst(precedence) {
		return splitRedirectFirst(parts)
	}
	return splitPipeFirst(parts)
}

func redirectsWinFirst(precedence string) bool {
	for _, r := range precedence {
		switch r {
		case '<', '>':
			return true
		case '|':
			return false
		}
	}
	return true
}

// part is either a recognized operator rune or a literal token.
type part struct {
	isOp bool
	op   rune
	text string
}

func isOperatorRune(r rune) bool {
	return r == '|' || r == '<' || r == '>'
}

// explode re-splits each token on its leading run of operator runes, so
// "|FIND" becomes the operator '|' followed by the literal "FIND", while
// an already-standalone "|" token (the spaced form "a | b") passes
// through as a single operator part.
func explode(tokens []string) []part {
	var parts []part
	for _, tok := range tokens {
		runes := []rune(tok)
		i := 0
		for i < len(runes) && isOperatorRune(runes[i]) {
			parts = append(parts, part{isOp: true, op: runes[i]})
			i++
		}
		if i < len(runes) {
			parts = append(parts, part{text: string(runes[i:])})
		}
	}
	return parts
}

func splitRedirectFirst(parts []part) (Stages, error) {
	var stages Stages
	var stage []string

	for i := 0; i < len(parts); i++ {
		p := parts[i]
		if !p.isOp {
			stage = append(stage, p.text)
			continue
		}

		switch p.op {
		case '|':
			stages.Tokens = append(stages.Tokens, stage)
			stage = nil
		case '<', '>':
			i++
			path, err := pathAt(parts, i)
			if err != nil {
				return Stages{}, err
			}
			if p.op == '<' {
				stages.StdinPath = path
			} else {
				stages.StdoutPath = path
			}
		}
	}
	stages.Tokens = append(stages.Tokens, stage)
	return stages, nil
}

func splitPipeFirst(parts []part) (Stages, error) {
	var stages Stages
	var stage []string

	for _, p := range parts {
		if p.isOp && p.op == '|' {
			stages.Tokens = append(stages.Tokens, stage)
			stage = nil
			continue
		}
		if p.isOp {
			stage = append(stage, string(p.op))
			continue
		}
		stage = append(stage, p.text)
	}
	stages.Tokens = append(stages.Tokens, stage)

	if len(stages.Tokens) == 0 {
		return stages, nil
	}

	// Pipe-first precedence recognizes '<'/'>' only within the resulting
	// first/last stage, but a line can land both operators in the same
	// stage (e.g. a trailing "<in.txt >out.txt" after the only '|'), so
	// both endpoints are checked against both edge stages rather than
	// assuming '<' can only appear in the first and '>' only in the last.
	extractEdgeRedirs(&stages, 0)
	if last := len(stages.Tokens) - 1; last != 0 {
		extractEdgeRedirs(&stages, last)
	}

	return stages, nil
}

// extractEdgeRedirs removes whichever of '<'/'>' appear in
// stages.Tokens[idx], recording their paths on stages.
func extractEdgeRedirs(stages *Stages, idx int) {
	stage := stages.Tokens[idx]
	if rest, path, found := takeEdgeRedir(stage, '<'); found {
		stage = rest
		stages.StdinPath = path
	}
	if rest, path, found := takeEdgeRedir(stage, '>'); found {
		stage = rest
		stages.StdoutPath = path
	}
	stages.Tokens[idx] = stage
}

// takeEdgeRedir removes the first "op path" pair found in stage and
// returns the remaining tokens alongside the extracted path.
func takeEdgeRedir(stage []string, op rune) (rest []string, path string, found bool) {
	opStr := string(op)
	for i, tok := range stage {
		if tok != opStr {
			continue
		}
		if i+1 >= len(stage) {
			return stage, "", false
		}
		path = stage[i+1]
		rest = append(append([]string{}, stage[:i]...), stage[i+2:]...)
		return rest, path, true
	}
	return stage, "", false
}

func pathAt(parts []part, i int) (string, error) {
	if i >= len(parts) || parts[i].isOp {
		return "", cmderr.New(cmderr.KindInvalidInput, "redirection operator requires a path")
	}
	return parts[i].text, nil
}
