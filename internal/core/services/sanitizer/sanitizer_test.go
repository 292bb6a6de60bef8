package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "clean line", input: "echo hello", want: "echo hello"},
		{name: "semicolon chain", input: "ls; rm -rf /", want: "ls rm -rf /"},
		{name: "background ampersand", input: "sleep 10 &", want: "sleep 10 "},
		{name: "and chain", input: "make && make install", want: "make  make install"},
		{name: "or chain", input: "false || true", want: "false  true"},
		{name: "single pipe kept", input: "ls | wc", want: "ls | wc"},
		{name: "quoted semicolon still removed", input: `echo "a;b"`, want: `echo "ab"`},
		{name: "triple pipe", input: "a|||b", want: "a|b"},
		{name: "only separators", input: ";&&||;", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitize_NeverLeavesChainingSequences(t *testing.T) {
	inputs := []string{
		"a;b&c||d",
		";;;;",
		"&&&",
		"|||||",
		"x|;|y",
		"echo ok ;& || done",
		"|&|",
	}

	for _, in := range inputs {
		out := Sanitize(in)
		for _, seq := range []string{";", "&", "||"} {
			assert.Falsef(t, strings.Contains(out, seq), "Sanitize(%q) = %q still contains %q", in, out, seq)
		}
	}
}
