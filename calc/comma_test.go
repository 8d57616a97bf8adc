package calc

import (
	"testing"
)

func TestFindCommaIssuesSameLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []CommaIssue
	}{
		{
			name:  "double comma",
			input: "a,,b",
			want:  []CommaIssue{{Kind: CommaDouble, Line: 0, StartCol: 1, EndCol: 3}},
		},
		{
			name:  "double comma with spaces",
			input: "a, ,b",
			want:  []CommaIssue{{Kind: CommaDouble, Line: 0, StartCol: 1, EndCol: 4}},
		},
		{
			name:  "trailing before paren",
			input: "f(a,)",
			want:  []CommaIssue{{Kind: CommaTrailing, Line: 0, StartCol: 3, EndCol: 4}},
		},
		{
			name:  "trailing before bracket",
			input: "[a,]",
			want:  []CommaIssue{{Kind: CommaTrailing, Line: 0, StartCol: 2, EndCol: 3}},
		},
		{
			name:  "trailing with spaces",
			input: "f(a, )",
			want:  []CommaIssue{{Kind: CommaTrailing, Line: 0, StartCol: 3, EndCol: 4}},
		},
		{
			name:  "valid list",
			input: "f(a, b, c)",
			want:  nil,
		},
		{
			name:  "triple comma reports twice",
			input: "a,,,b",
			want: []CommaIssue{
				{Kind: CommaDouble, Line: 0, StartCol: 1, EndCol: 3},
				{Kind: CommaDouble, Line: 0, StartCol: 2, EndCol: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindCommaIssues(tt.input)
			assertCommaIssues(t, got, tt.want)
		})
	}
}

func TestFindCommaIssuesAcrossLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []CommaIssue
	}{
		{
			name:  "enclosed list closes after dangling comma",
			input: "(a,\n)",
			want:  []CommaIssue{{Kind: CommaTrailing, Line: 0, StartCol: 2, EndCol: 3}},
		},
		{
			name:  "enclosed list continues on next line",
			input: "(a,\nb)",
			want:  nil,
		},
		{
			name:  "top level trailing comma is a terminator",
			input: "a,\nb",
			want:  nil,
		},
		{
			name:  "top level double across lines",
			input: "a,\n,b",
			want:  []CommaIssue{{Kind: CommaDouble, Line: 0, StartCol: 1, EndCol: 2}},
		},
		{
			name:  "enclosed double across lines",
			input: "(a,\n,b)",
			want:  []CommaIssue{{Kind: CommaDouble, Line: 0, StartCol: 2, EndCol: 3}},
		},
		{
			name:  "bracket closes after dangling comma",
			input: "[a,\n]",
			want:  []CommaIssue{{Kind: CommaTrailing, Line: 0, StartCol: 2, EndCol: 3}},
		},
		{
			name:  "blank lines before continuation",
			input: "(a,\n\n\nb)",
			want:  nil,
		},
		{
			name:  "quote opens the continuation",
			input: "(a,\n\"b\")",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindCommaIssues(tt.input)
			assertCommaIssues(t, got, tt.want)
		})
	}
}

func TestFindCommaIssuesCommentAware(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []CommaIssue
	}{
		{
			name:  "comment after comma blocks same-line check",
			input: "(a, /* note */ b)",
			want:  nil,
		},
		{
			name:  "lookahead skips comment before continuation",
			input: "(a,\n/* note */ b)",
			want:  nil,
		},
		{
			name:  "lookahead skips comment before closing paren",
			input: "(a,\n/* note */ )",
			want:  []CommaIssue{{Kind: CommaTrailing, Line: 0, StartCol: 2, EndCol: 3}},
		},
		{
			name:  "commented-out closing bracket",
			input: "(a,\n/* ) */ b)",
			want:  nil,
		},
		{
			name:  "comma inside comment ignored",
			input: "(a /* , */ b)",
			want:  nil,
		},
		{
			name:  "comma inside string ignored",
			input: `("a,,b")`,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindCommaIssues(tt.input)
			assertCommaIssues(t, got, tt.want)
		})
	}
}

func TestFindCommaIssuesDepthClamped(t *testing.T) {
	// Excess closing parens must not drive the depth negative: after
	// ")))" the comma is at top level again, so the dangling comma is
	// a valid terminator.
	got := FindCommaIssues(")))a,\nb")
	assertCommaIssues(t, got, nil)
}

func TestFindCommaIssuesNestedEnclosures(t *testing.T) {
	// The bracket keeps the comma enclosed even after the inner paren
	// pair closes.
	got := FindCommaIssues("[f(a),\n]")
	want := []CommaIssue{{Kind: CommaTrailing, Line: 0, StartCol: 5, EndCol: 6}}
	assertCommaIssues(t, got, want)
}

func assertCommaIssues(t *testing.T, got, want []CommaIssue) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(issues) = %d, want %d (got %+v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("issues[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
