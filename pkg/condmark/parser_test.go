package condmark

import (
	"fmt"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantAST  string
	}{
		{
			name:     "plain text",
			template: "Hello World",
			wantAST:  `[Text("Hello World")]`,
		},
		{
			name:     "single block",
			template: "/*if:x*/A/*endif*/",
			wantAST:  `[Block(x)]`,
		},
		{
			name:     "block with surrounding text",
			template: "a/*if:x*/b/*endif*/c",
			wantAST:  `[Text("a") Block(x) Text("c")]`,
		},
		{
			name:     "sequential blocks",
			template: "/*if:a*/A/*endif*//*if:b*/B/*endif*/",
			wantAST:  `[Block(a) Block(b)]`,
		},
		{
			name:     "nested block",
			template: "/*if:a*/X/*if:b*/Y/*endif*//*endif*/",
			wantAST:  `[Block(a)]`,
		},
		{
			name:     "negated condition",
			template: "/*if:!x*/A/*endif*/",
			wantAST:  `[Block(!x)]`,
		},
		{
			name:     "stray closing marker stays text",
			template: "A/*endif*/B",
			wantAST:  `[Text("A") Text("/*endif*/") Text("B")]`,
		},
		{
			name:     "unmatched opening marker stays text",
			template: "/*if:x*/A",
			wantAST:  `[Text("/*if:x*/") Text("A")]`,
		},
		{
			name:     "unmatched outer with matched inner",
			template: "/*if:a*/ /*if:b*/X/*endif*/",
			wantAST:  `[Text("/*if:a*/") Text(" ") Block(b)]`,
		},
		{
			name:     "extra closing marker after matched block",
			template: "/*if:a*/X/*endif*//*endif*/",
			wantAST:  `[Block(a) Text("/*endif*/")]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fmt.Sprintf("%v", Parse(tt.template))
			if got != tt.wantAST {
				t.Errorf("Parse(%q) = %s, want %s", tt.template, got, tt.wantAST)
			}
		})
	}
}

func TestParseBlockBody(t *testing.T) {
	nodes := Parse("/*if:a*/X/*if:b*/Y/*endif*/Z/*endif*/")
	if len(nodes) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(nodes))
	}

	block, ok := nodes[0].(*BlockNode)
	if !ok {
		t.Fatalf("expected *BlockNode, got %T", nodes[0])
	}
	if block.Condition != "a" {
		t.Errorf("Condition = %q, want %q", block.Condition, "a")
	}

	wantBody := `[Text("X") Block(b) Text("Z")]`
	if got := fmt.Sprintf("%v", block.Body); got != wantBody {
		t.Errorf("Body = %s, want %s", got, wantBody)
	}
}

func TestParseWithDepthCeiling(t *testing.T) {
	// Two levels of nesting with a ceiling of one: the inner opening marker
	// must degrade to text and its close then pairs with the outer open.
	template := "/*if:a*/X/*if:b*/Y/*endif*/Z/*endif*/"
	nodes := ParseWithDepth(template, 1)

	wantAST := `[Block(a) Text("Z") Text("/*endif*/")]`
	if got := fmt.Sprintf("%v", nodes); got != wantAST {
		t.Errorf("ParseWithDepth() = %s, want %s", got, wantAST)
	}

	// Rendering is still total and keeps every character of the unpaired
	// markers.
	out := renderNodes(nodes, TemplateData{"a": true, "b": true})
	if !strings.Contains(out, "/*if:b*/") || !strings.Contains(out, "/*endif*/") {
		t.Errorf("best-effort output lost marker text: %q", out)
	}
}

func TestParseDeepNestingWithinDefaultCeiling(t *testing.T) {
	// Depth 50 is far below the default ceiling and must parse into a
	// single chain of nested blocks.
	depth := 50
	var b strings.Builder
	for i := 0; i < depth; i++ {
		fmt.Fprintf(&b, "/*if:k%d*/", i)
	}
	b.WriteString("core")
	for i := 0; i < depth; i++ {
		b.WriteString("/*endif*/")
	}

	nodes := Parse(b.String())
	if len(nodes) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(nodes))
	}

	current := nodes
	for i := 0; i < depth; i++ {
		block, ok := current[0].(*BlockNode)
		if !ok {
			t.Fatalf("level %d: expected *BlockNode, got %T", i, current[0])
		}
		current = block.Body
	}
	text, ok := current[0].(*TextNode)
	if !ok || text.Content != "core" {
		t.Fatalf("innermost node = %v, want Text(\"core\")", current[0])
	}
}
