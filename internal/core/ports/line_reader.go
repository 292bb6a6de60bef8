package ports

// LineReader is the source of interactive input lines.
type LineReader interface {
	/*
	   ReadLine returns the next line without its terminator.
	   It returns shellerr.ErrInterrupted on Ctrl+C and io.EOF at end of input.
	*/
	ReadLine() (string, error)
	SetPrompt(prompt string)
	Close() error
}
