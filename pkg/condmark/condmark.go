package condmark

// TemplateData represents the data mapping a template is evaluated against.
// It maps string keys to values; values may themselves be maps, reached from
// conditions with dotted paths. The engine only ever reads it.
//
// Example:
//
//	data := condmark.TemplateData{
//	    "debug": true,
//	    "user": map[string]interface{}{
//	        "admin": false,
//	    },
//	}
type TemplateData map[string]interface{}

// Process rewrites a template, keeping the content of every conditional
// block whose condition evaluates truthy and dropping blocks that evaluate
// falsy. Blocks nest to arbitrary depth and are resolved innermost-first.
//
// Process is total: it never fails. Unmatched or malformed marker text is
// returned verbatim, and a condition whose path is missing from the data
// simply reads as falsy. The data mapping is not mutated, so concurrent
// calls need no coordination.
func Process(template string, data TemplateData) string {
	return Prepare(template).Render(data)
}

// PreparedTemplate is a parsed template ready for repeated rendering.
// Parsing happens once in Prepare; Render only walks the block tree, so a
// prepared template can be reused with many data mappings. A
// PreparedTemplate is immutable and safe for concurrent use.
type PreparedTemplate struct {
	source string
	nodes  []Node
}

// Prepare parses a template's marker structure once so it can be rendered
// repeatedly without re-scanning.
func Prepare(template string) *PreparedTemplate {
	return &PreparedTemplate{
		source: template,
		nodes:  Parse(template),
	}
}

// Render evaluates the prepared template against the given data mapping and
// returns the rewritten string.
func (pt *PreparedTemplate) Render(data TemplateData) string {
	if pt == nil {
		return ""
	}
	return renderNodes(pt.nodes, data)
}

// Source returns the original template text
func (pt *PreparedTemplate) Source() string {
	if pt == nil {
		return ""
	}
	return pt.source
}
