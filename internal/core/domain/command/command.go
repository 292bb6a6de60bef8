package command

// Line is a tokenized input line: the command name followed by its arguments.
type Line struct {
	Original string
	Name     string   // First whitespace-delimited token
	Args     []string // Remaining tokens, order preserved
}

// IsEmpty reports whether the line carried no command at all.
func (l Line) IsEmpty() bool {
	return l.Name == ""
}

// WithArgs returns a copy of the line with extra arguments appended after its own.
func (l Line) WithArgs(extra ...string) Line {
	args := make([]string, 0, len(l.Args)+len(extra))
	args = append(args, l.Args...)
	args = append(args, extra...)
	return Line{Original: l.Original, Name: l.Name, Args: args}
}
