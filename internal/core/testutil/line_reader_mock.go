package testutil

import (
	"io"

	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

// ReadResult is one scripted answer of MockLineReader.
type ReadResult struct {
	Line string
	Err  error
}

// MockLineReader replays Results in order and returns io.EOF afterwards.
type MockLineReader struct {
	Results []ReadResult
	Prompts []string
	Closed  bool
	reads   int
}

// Lines builds a MockLineReader answering with the given lines.
func Lines(lines ...string) *MockLineReader {
	m := &MockLineReader{}
	for _, l := range lines {
		m.Results = append(m.Results, ReadResult{Line: l})
	}
	return m
}

func (m *MockLineReader) ReadLine() (string, error) {
	if m.reads >= len(m.Results) {
		return "", io.EOF
	}
	r := m.Results[m.reads]
	m.reads++
	return r.Line, r.Err
}

// Reads returns how many times ReadLine was called with a scripted answer.
func (m *MockLineReader) Reads() int {
	return m.reads
}

func (m *MockLineReader) SetPrompt(prompt string) {
	m.Prompts = append(m.Prompts, prompt)
}

func (m *MockLineReader) Close() error {
	m.Closed = true
	return nil
}

var _ ports.LineReader = (*MockLineReader)(nil)
