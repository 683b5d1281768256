// Package condmark processes text templates containing inline conditional
// comment markers, keeping or dropping marked blocks based on a data mapping.
//
// It is a pure in-process text transform: no I/O, no persisted state, no
// wire protocol. Templates are strings, data is a nested string-keyed map,
// and the result is a new string.
//
// # Quick Start
//
//	result := condmark.Process(
//	    "SELECT id/*if:withName*/, name/*endif*/ FROM users",
//	    condmark.TemplateData{"withName": true},
//	)
//	// result == "SELECT id, name FROM users"
//
// For repeated processing of the same template, parse once and render many
// times:
//
//	tmpl := condmark.Prepare(source)
//	out1 := tmpl.Render(dataA)
//	out2 := tmpl.Render(dataB)
//
// # Marker Syntax
//
// The marker syntax is fixed and deliberately small:
//
//	/*if:condition*/ ... /*endif*/      - conditional block
//	/*if:!condition*/ ... /*endif*/     - negated conditional block
//	/*if:path.to.value*/ ... /*endif*/  - dotted-path condition
//
// A condition is an optional "!" followed by one or more letters, digits,
// underscores and dots. Anything else between /* and */ is ordinary comment
// text and passes through untouched. Blocks nest to arbitrary depth; each
// closing marker pairs with the nearest unclosed opening marker.
//
// There are no loops, no variable interpolation and no escaping syntax.
//
// # Truthiness
//
// A condition path is resolved against the data mapping by walking nested
// maps one dotted segment at a time. The resolved value is then classified:
//
//	falsy:  false, numeric zero, "", nil, missing path
//	truthy: everything else, including empty slices and empty maps
//
// Note the last line: emptiness of a collection does not make it falsy.
// That is a deliberate semantic of the marker language, covered by tests;
// do not "fix" it to collection emptiness.
//
// # Malformed Input
//
// Processing is total and never returns an error. An opening marker without
// a matching close, or a stray closing marker, is left verbatim in the
// output. Missing condition paths read as falsy, so
//
//	condmark.Process("/*if:x*/A/*endif*/", nil)   // ""
//	condmark.Process("/*if:!x*/A/*endif*/", nil)  // "A"
//
// # Configuration
//
// Defaults come from the environment (CONDMARK_LOG_LEVEL,
// CONDMARK_MAX_NESTING_DEPTH, CONDMARK_CACHE_MAX_SIZE, CONDMARK_CACHE_TTL)
// or from an explicit Config:
//
//	engine := condmark.NewWithConfig(&condmark.Config{
//	    LogLevel:        "warn",
//	    MaxNestingDepth: 100,
//	    CacheMaxSize:    500,
//	})
//	out := engine.Process(tmpl, data)
//
// MaxNestingDepth is a defensive ceiling, not a user-facing limit: input
// nested past it is processed best-effort with the deepest markers left as
// text, and realistic templates never come close to the default of 1000.
//
// # Thread Safety
//
// Process is pure with respect to its inputs and safe to call from any
// number of goroutines. PreparedTemplate is immutable after Prepare and
// equally safe to share. Engine's cache is internally synchronized.
package condmark
