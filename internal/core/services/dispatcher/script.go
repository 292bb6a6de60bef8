package dispatcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/services/sanitizer"
)

// maxScriptDepth bounds `run` nesting so a script that runs itself terminates.
const maxScriptDepth = 16

// Report summarizes a script run. Blank lines are not counted.
type Report struct {
	Lines     int
	Succeeded int
	Failed    int
}

/*
RunScript executes the file at path line by line, appending scriptArgs to
every line's own arguments. It fails before running anything if the file
cannot be opened. A failing line is reported on the error stream and the
remaining lines still run.
*/
func (d *Dispatcher) RunScript(ctx context.Context, path string, scriptArgs []string) (Report, error) {
	var report Report
	if d.scriptDepth >= maxScriptDepth {
		return report, fmt.Errorf("%w: %s (limit %d)", errScriptDepth, path, maxScriptDepth)
	}

	file, err := d.env.Fs().Open(d.env.Resolve(path))
	if err != nil {
		return report, fmt.Errorf("%w: %w", shellerr.ErrIO, err)
	}
	defer file.Close()

	d.scriptDepth++
	defer func() { d.scriptDepth-- }()

	reader := bufio.NewReader(file)
	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return report, fmt.Errorf("%w: reading %s: %w", shellerr.ErrIO, path, readErr)
		}
		if raw != "" {
			lineNo++
			d.runScriptLine(ctx, path, lineNo, raw, scriptArgs, &report)
		}
		if readErr != nil {
			return report, nil
		}
	}
}

func (d *Dispatcher) runScriptLine(ctx context.Context, path string, lineNo int, raw string, scriptArgs []string, report *Report) {
	line := d.parser.Parse(sanitizer.Sanitize(strings.TrimRight(raw, "\r\n")))
	if line.IsEmpty() {
		return
	}
	report.Lines++

	if err := d.Dispatch(ctx, line.WithArgs(scriptArgs...)); err != nil {
		report.Failed++
		d.logger.Debug("script line failed", "path", path, "line", lineNo, "error", err)
		fmt.Fprintf(d.streams.Stderr, "%s:%d: %v\n", path, lineNo, err)
		return
	}
	report.Succeeded++
}
