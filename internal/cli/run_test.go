package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugmin/internal/cli"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, environ map[string]string, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	r := &cli.Runner{
		Stdin:   strings.NewReader(stdin),
		Stdout:  &stdout,
		Stderr:  &stderr,
		Environ: environ,
	}
	err := r.Run(context.Background(), args)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestRunEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
		stdin   string
		args    []string
		want    string
	}{
		{
			name: "arguments",
			args: []string{"My Test String!!!1!1", "You & Me"},
			want: "my-test-string-1-1\nyou-me\n",
		},
		{
			name:  "stdin lines",
			stdin: "  --test_-_cool\nÆúű--cool?\n",
			want:  "test-cool\naeuu-cool\n",
		},
		{
			name:  "normal mode with case",
			stdin: "roman.  txt\nRWR - - - - - - -\n",
			args:  []string{"--mode", "normal", "-c"},
			want:  "roman. txt\nRWR\n",
		},
		{
			name:    "environment selects mode",
			environ: map[string]string{"SLUGMIN_MODE": "normal"},
			args:    []string{"You & Me"},
			want:    "you - me\n",
		},
		{
			name:    "flag overrides environment",
			environ: map[string]string{"SLUGMIN_MODE": "normal"},
			args:    []string{"--mode=strict", "You & Me"},
			want:    "you-me\n",
		},
		{
			name: "max length",
			args: []string{"--max-length", "7", "Cut off cleanly"},
			want: "cut-off\n",
		},
		{
			name: "decompose table",
			args: []string{"--table", "decompose", "Crème Brûlée"},
			want: "creme-brulee\n",
		},
		{
			name: "strip html",
			args: []string{"--strip-html", "<h1>Fish &amp; Chips</h1>"},
			want: "fish-chips\n",
		},
		{
			name:    "strip html from environment",
			environ: map[string]string{"SLUGMIN_STRIP_HTML": "true"},
			args:    []string{"<b>Bold</b> move"},
			want:    "bold-move\n",
		},
		{
			name: "html kept by default",
			args: []string{"<b>Bold</b>"},
			want: "b-bold-b\n",
		},
		{
			name: "strip chars",
			args: []string{"--strip-chars", "$:", "Price: $100"},
			want: "price-100\n",
		},
		{
			name: "replace",
			args: []string{"--replace", "&=and,@=at", "Fish & Chips @ Home"},
			want: "fish-and-chips-at-home\n",
		},
		{
			name:    "replace from environment",
			environ: map[string]string{"SLUGMIN_REPLACE": "+=plus"},
			args:    []string{"C++"},
			want:    "cplusplus\n",
		},
		{
			name: "no input",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.environ, tt.stdin, tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestRunEncodeReserved(t *testing.T) {
	t.Parallel()

	res := run(t, map[string]string{"SLUGMIN_RESERVED": "admin,api"}, "", "Admin", "blog")
	require.NoError(t, res.err)
	assert.Regexp(t, `^admin-[a-z0-9]{6}\nblog\n$`, res.stdout)
}

func TestRunEmptySlugWarning(t *testing.T) {
	t.Parallel()

	res := run(t, nil, "ok\n!!!\n")
	require.NoError(t, res.err)
	assert.Equal(t, "ok\n\n", res.stdout)
	assert.Contains(t, res.stderr, "input produced an empty slug")
	assert.Contains(t, res.stderr, "input.source=stdin")
	assert.Contains(t, res.stderr, "input.line=2")
}

func TestRunDebugJSON(t *testing.T) {
	t.Parallel()

	res := run(t, nil, "", "--log-level", "debug", "--log-format", "json", "You & Me")
	require.NoError(t, res.err)
	assert.Equal(t, "you-me\n", res.stdout)
	assert.Contains(t, res.stderr, `"msg":"configured"`)
	assert.Contains(t, res.stderr, `"msg":"encoded"`)
	assert.Contains(t, res.stderr, `"input":{"source":"args","line":1}`)
}

func TestRunLogFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slugmin.log")
	res := run(t, nil, "", "--log-file", path, "???")
	require.NoError(t, res.err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "input produced an empty slug")
	assert.Contains(t, res.stderr, "input produced an empty slug")
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantValid  bool
		wantReport []string
	}{
		{
			name:      "valid arguments",
			args:      []string{"check", "my-slug", "42"},
			wantValid: true,
		},
		{
			name:       "invalid argument",
			args:       []string{"check", "my-slug", "Not A Slug"},
			wantReport: []string{`args:2: "Not A Slug": invalid slug, want "not-a-slug"`},
		},
		{
			name:      "normal mode from stdin",
			stdin:     "you - me\nroman. txt\n",
			args:      []string{"check", "--mode", "normal"},
			wantValid: true,
		},
		{
			name:       "normal mode rejects double space",
			stdin:      "you - me\nroman.  txt\n",
			args:       []string{"check", "--mode", "normal"},
			wantReport: []string{`stdin:2: "roman.  txt": invalid slug, want "roman. txt"`},
		},
		{
			name:       "too long",
			args:       []string{"check", "--max-length", "3", "abcd"},
			wantReport: []string{`args:1: "abcd": slug too long, max length 3`},
		},
		{
			name:      "flags before the command",
			args:      []string{"--mode", "normal", "check", "you - me"},
			wantValid: true,
		},
		{
			name:       "reported with logging silenced",
			args:       []string{"--log-level", "error", "check", "a--b"},
			wantReport: []string{`args:1: "a--b": invalid slug, want "a-b"`},
		},
		{
			name:       "reported when quiet",
			args:       []string{"-q", "check", "ok", "A"},
			wantReport: []string{`args:2: "A": invalid slug, want "a"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, nil, tt.stdin, tt.args...)
			assert.Empty(t, res.stdout)
			if tt.wantValid {
				require.NoError(t, res.err)
				assert.Empty(t, res.stderr)
				return
			}
			require.ErrorIs(t, res.err, cli.ErrInvalidSlug)
			for _, want := range tt.wantReport {
				assert.Contains(t, res.stderr, want)
			}
		})
	}
}

func TestRunCheckCount(t *testing.T) {
	t.Parallel()

	res := run(t, nil, "", "check", "fine", "Not Fine", "also-fine")
	require.ErrorIs(t, res.err, cli.ErrInvalidSlug)
	assert.Contains(t, res.err.Error(), "1 of 3 inputs")
	assert.Equal(t, 1, strings.Count(res.stderr, "invalid slug"))
}

func TestRunCheckDebugLog(t *testing.T) {
	t.Parallel()

	res := run(t, nil, "", "--log-level", "debug", "check", "Not A Slug")
	require.ErrorIs(t, res.err, cli.ErrInvalidSlug)
	assert.Contains(t, res.stderr, "want=not-a-slug")
	assert.Contains(t, res.stderr, "input.line=1")
}

func TestRunCheckWordAfterDash(t *testing.T) {
	t.Parallel()

	res := run(t, nil, "", "--", "check", "this")
	require.NoError(t, res.err)
	assert.Equal(t, "check\nthis\n", res.stdout)
}

func TestRunQuiet(t *testing.T) {
	t.Parallel()

	res := run(t, nil, "", "--quiet", "--log-level", "debug", "???")
	require.NoError(t, res.err)
	assert.Equal(t, "\n", res.stdout)
	assert.Empty(t, res.stderr)

	res = run(t, map[string]string{"SLUGMIN_QUIET": "true"}, "!!!\n")
	require.NoError(t, res.err)
	assert.Empty(t, res.stderr)
}

func TestRunConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
		args    []string
	}{
		{name: "unknown flag", args: []string{"--frobnicate"}},
		{name: "bad mode flag", args: []string{"--mode", "loose", "x"}},
		{name: "bad table flag", args: []string{"--table", "klingon", "x"}},
		{name: "bad log level", args: []string{"--log-level", "loud", "x"}},
		{name: "bad log format", args: []string{"--log-format", "xml", "x"}},
		{name: "bad environment", environ: map[string]string{"SLUGMIN_MAX_LENGTH": "lots"}, args: []string{"x"}},
		{name: "unwritable log file", args: []string{"--log-file", filepath.Join("does", "not", "exist", "log"), "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.environ, "", tt.args...)
			require.ErrorIs(t, res.err, cli.ErrInvalidConfig)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	res := run(t, nil, "", "--help")
	require.ErrorIs(t, res.err, pflag.ErrHelp)
	assert.Contains(t, res.stderr, "--preserve-case")
	assert.Contains(t, res.stderr, "slugmin [flags] check [slug...]")
	assert.Contains(t, res.stderr, "--min-length")
	assert.Contains(t, res.stderr, "decompose, unidecode")
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	r := &cli.Runner{Stdin: strings.NewReader("a\nb\n"), Stdout: &stdout, Stderr: &bytes.Buffer{}}
	err := r.Run(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout.String())
}
