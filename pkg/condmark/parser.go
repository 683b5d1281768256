package condmark

import (
	"fmt"
	"strings"
)

// Node is one piece of a parsed template
type Node interface {
	Render(data TemplateData) string
	String() string
}

// TextNode represents literal template content, including any marker text
// that could not be paired into a block.
type TextNode struct {
	Content string
}

func (n *TextNode) String() string {
	return fmt.Sprintf("Text(%q)", n.Content)
}

func (n *TextNode) Render(data TemplateData) string {
	return n.Content
}

// BlockNode represents a conditional block with its parsed body.
type BlockNode struct {
	Condition string
	Body      []Node
}

func (n *BlockNode) String() string {
	return fmt.Sprintf("Block(%s)", n.Condition)
}

func (n *BlockNode) Render(data TemplateData) string {
	// Dropped blocks contribute nothing, markers included
	if !EvaluateCondition(n.Condition, data) {
		return ""
	}
	return renderNodes(n.Body, data)
}

// renderNodes renders a list of nodes into a single string
func renderNodes(nodes []Node, data TemplateData) string {
	var result strings.Builder
	for _, node := range nodes {
		result.WriteString(node.Render(data))
	}
	return result.String()
}

// blockParser pairs opening and closing markers into a block tree
type blockParser struct {
	tokens   []Token
	pos      int
	maxDepth int
}

// Parse builds the block tree for a template. Each closing marker pairs with
// the nearest unclosed opening marker, which resolves arbitrarily deep
// nesting innermost-first. Markers left unpaired degrade to plain text, so
// malformed input never fails and never loses characters.
func Parse(template string) []Node {
	return ParseWithDepth(template, GetGlobalConfig().MaxNestingDepth)
}

// ParseWithDepth parses a template with an explicit nesting ceiling.
// Opening markers past the ceiling are treated as text; the result is then
// best-effort rather than an error. Realistic templates (nesting depth well
// under the default ceiling) are never affected.
func ParseWithDepth(template string, maxDepth int) []Node {
	parser := &blockParser{
		tokens:   Tokenize(template),
		maxDepth: maxDepth,
	}
	nodes, _ := parser.parseBody(0, false)
	return nodes
}

// parseBody consumes tokens until an unconsumed closing marker (when inside
// a block) or the end of input. It reports whether it stopped on a close.
func (p *blockParser) parseBody(depth int, inBlock bool) ([]Node, bool) {
	var nodes []Node

	for p.pos < len(p.tokens) {
		token := p.tokens[p.pos]

		switch token.Type {
		case TokenText:
			if token.Raw != "" {
				nodes = append(nodes, &TextNode{Content: token.Raw})
			}
			p.pos++

		case TokenClose:
			if inBlock {
				p.pos++
				return nodes, true
			}
			// Stray closing marker: keep it verbatim
			nodes = append(nodes, &TextNode{Content: token.Raw})
			p.pos++

		case TokenOpen:
			if depth >= p.maxDepth {
				// Past the nesting ceiling the marker reads as text
				nodes = append(nodes, &TextNode{Content: token.Raw})
				p.pos++
				continue
			}
			p.pos++
			body, closed := p.parseBody(depth+1, true)
			if closed {
				nodes = append(nodes, &BlockNode{
					Condition: token.Condition,
					Body:      body,
				})
			} else {
				// Opening marker with no matching close: keep it verbatim
				// and splice the parsed body after it
				nodes = append(nodes, &TextNode{Content: token.Raw})
				nodes = append(nodes, body...)
			}
		}
	}

	return nodes, false
}
