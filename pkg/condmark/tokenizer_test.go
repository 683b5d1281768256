package condmark

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "plain text",
			input: "SELECT * FROM users",
			want: []Token{
				{Type: TokenText, Raw: "SELECT * FROM users"},
			},
		},
		{
			name:  "single block",
			input: "/*if:debug*/verbose/*endif*/",
			want: []Token{
				{Type: TokenOpen, Condition: "debug", Raw: "/*if:debug*/"},
				{Type: TokenText, Raw: "verbose"},
				{Type: TokenClose, Raw: "/*endif*/"},
			},
		},
		{
			name:  "negated condition",
			input: "/*if:!debug*/quiet/*endif*/",
			want: []Token{
				{Type: TokenOpen, Condition: "!debug", Raw: "/*if:!debug*/"},
				{Type: TokenText, Raw: "quiet"},
				{Type: TokenClose, Raw: "/*endif*/"},
			},
		},
		{
			name:  "dotted path condition",
			input: "/*if:user.roles.admin*/X/*endif*/",
			want: []Token{
				{Type: TokenOpen, Condition: "user.roles.admin", Raw: "/*if:user.roles.admin*/"},
				{Type: TokenText, Raw: "X"},
				{Type: TokenClose, Raw: "/*endif*/"},
			},
		},
		{
			name:  "text around markers",
			input: "a /*if:x*/b/*endif*/ c",
			want: []Token{
				{Type: TokenText, Raw: "a "},
				{Type: TokenOpen, Condition: "x", Raw: "/*if:x*/"},
				{Type: TokenText, Raw: "b"},
				{Type: TokenClose, Raw: "/*endif*/"},
				{Type: TokenText, Raw: " c"},
			},
		},
		{
			name:  "ordinary comment is not a marker",
			input: "/* just a comment */",
			want: []Token{
				{Type: TokenText, Raw: "/* just a comment */"},
			},
		},
		{
			name:  "empty condition is not a marker",
			input: "/*if:*/A/*endif*/",
			want: []Token{
				{Type: TokenText, Raw: "/*if:*/A"},
				{Type: TokenClose, Raw: "/*endif*/"},
			},
		},
		{
			name:  "bare negation is not a marker",
			input: "/*if:!*/A/*endif*/",
			want: []Token{
				{Type: TokenText, Raw: "/*if:!*/A"},
				{Type: TokenClose, Raw: "/*endif*/"},
			},
		},
		{
			name:  "condition with illegal character is not a marker",
			input: "/*if:foo-bar*/A/*endif*/",
			want: []Token{
				{Type: TokenText, Raw: "/*if:foo-bar*/A"},
				{Type: TokenClose, Raw: "/*endif*/"},
			},
		},
		{
			name:  "adjacent markers",
			input: "/*if:a*//*endif*//*if:b*//*endif*/",
			want: []Token{
				{Type: TokenOpen, Condition: "a", Raw: "/*if:a*/"},
				{Type: TokenClose, Raw: "/*endif*/"},
				{Type: TokenOpen, Condition: "b", Raw: "/*if:b*/"},
				{Type: TokenClose, Raw: "/*endif*/"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindMarkers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "no markers",
			input: "plain text",
			want:  []string{},
		},
		{
			name:  "open and close",
			input: "x /*if:a.b*/ y /*endif*/ z",
			want:  []string{"/*if:a.b*/", "/*endif*/"},
		},
		{
			name:  "unrecognized marker text ignored",
			input: "/*if:a b*/ /*endif*/",
			want:  []string{"/*endif*/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMarkers(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindMarkers(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
