package dispatcher

import (
	"context"
	"strings"
	"testing"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, f *fixture, path string, lines ...string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func TestRunScript_FailingLineDoesNotAbort(t *testing.T) {
	f := newFixture(t)
	writeScript(t, f, "/home/dragon/build.dsh",
		"echo one",
		"nonexistent-compiler main.c",
		"echo three",
		"make all",
	)

	report, err := f.d.RunScript(context.Background(), "build.dsh", nil)

	require.NoError(t, err)
	assert.Equal(t, Report{Lines: 4, Succeeded: 3, Failed: 1}, report)
	assert.Equal(t, report.Lines, report.Succeeded+report.Failed)
	assert.Equal(t, "one\nthree\n", f.out.String())
	assert.Contains(t, f.errOut.String(), "build.dsh:2:")
	require.Len(t, f.launcher.Calls, 2)
	assert.Equal(t, "make", f.launcher.Calls[1].Name, "lines after the failure still run")
}

func TestRunScript_AppendsScriptArgsToEveryLine(t *testing.T) {
	f := newFixture(t)
	writeScript(t, f, "/home/dragon/args.dsh",
		"echo first",
		"echo second x",
		"touch",
	)

	_, err := f.d.RunScript(context.Background(), "args.dsh", []string{"a", "b", "a"})

	require.NoError(t, err)
	assert.Equal(t, "first a b a\nsecond x a b a\n", f.out.String())
	require.Len(t, f.launcher.Calls, 1)
	assert.Equal(t, []string{"a", "b", "a"}, f.launcher.Calls[0].Args)
}

func TestRunScript_SkipsBlankLinesAndSanitizes(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, afero.WriteFile(f.fs, "/home/dragon/s.dsh", []byte("echo a; echo b\r\n\n   \necho c && d"), 0o644))

	report, err := f.d.RunScript(context.Background(), "/home/dragon/s.dsh", nil)

	require.NoError(t, err)
	assert.Equal(t, Report{Lines: 2, Succeeded: 2}, report)
	assert.Equal(t, "a echo b\nc d\n", f.out.String())
}

func TestRunScript_MissingFileFailsBeforeRunning(t *testing.T) {
	f := newFixture(t)

	report, err := f.d.RunScript(context.Background(), "missing.dsh", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, shellerr.ErrIO)
	assert.Equal(t, Report{}, report)
	assert.Empty(t, f.out.String())
}

func TestRunScript_UsesWorkingDirectory(t *testing.T) {
	f := newFixture(t)
	writeScript(t, f, "/home/dragon/docs/inner.dsh", "lf .")
	_, err := f.run(t, "cd docs")
	require.NoError(t, err)

	out, err := f.run(t, "run inner.dsh")

	require.NoError(t, err)
	assert.Contains(t, out, "a.txt")
}

func TestRunScript_CdInScriptPersists(t *testing.T) {
	f := newFixture(t)
	writeScript(t, f, "/home/dragon/go.dsh", "cd docs")

	_, err := f.d.RunScript(context.Background(), "go.dsh", nil)

	require.NoError(t, err)
	assert.Equal(t, "/home/dragon/docs", f.env.Dir())
}

func TestDispatch_RunCommand(t *testing.T) {
	f := newFixture(t)
	writeScript(t, f, "/home/dragon/hello.dsh", "echo hello")

	out, err := f.run(t, "run hello.dsh world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)

	out, err = f.run(t, "run")
	require.NoError(t, err)
	assert.Equal(t, "Usage: run <script_path> [args...]\n", out)

	_, err = f.run(t, "run nope.dsh")
	assert.ErrorIs(t, err, shellerr.ErrIO)
	assert.Contains(t, err.Error(), "error running script")
}

func TestRunScript_SelfRecursionIsBounded(t *testing.T) {
	f := newFixture(t)
	writeScript(t, f, "/home/dragon/loop.dsh", "echo tick", "run loop.dsh")

	report, err := f.d.RunScript(context.Background(), "loop.dsh", nil)

	require.NoError(t, err)
	assert.Equal(t, Report{Lines: 2, Succeeded: 2}, report, "only the innermost level sees the depth error")
	assert.Equal(t, maxScriptDepth, strings.Count(f.out.String(), "tick"))
	assert.Contains(t, f.errOut.String(), "script nesting too deep")
	assert.Equal(t, 0, f.d.scriptDepth)
}
