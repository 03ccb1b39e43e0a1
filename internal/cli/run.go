package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/slugmin/pkg/logger"
	"github.com/dmitrymomot/slugmin/pkg/sanitizer"
	"github.com/dmitrymomot/slugmin/pkg/slug"
)

// DotenvFile is the dotenv file read from the working directory.
const DotenvFile = ".env"

const maxLineSize = 1 << 20

// Runner executes the slugmin command.
type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Environ map[string]string
	// Dotenv is the dotenv file to load; empty skips it.
	Dotenv string
}

// Run parses args and either slugifies or checks every input.
//
//	slugmin [flags] [text...]
//	slugmin [flags] check [slug...]
//
// Inputs come from the positional arguments, or from stdin one per line when
// there are none. The first positional argument selects the check command
// unless it follows "--".
func (r *Runner) Run(ctx context.Context, args []string) error {
	cfg, err := LoadConfig(r.Dotenv, r.Environ)
	if err != nil {
		return err
	}

	fs := newFlagSet("slugmin", &cfg, r.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return errors.Join(ErrInvalidConfig, err)
	}
	inputs, check := fs.Args(), false
	if len(inputs) > 0 && inputs[0] == "check" && fs.ArgsLenAtDash() != 0 {
		inputs, check = inputs[1:], true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := r.newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	enc, err := cfg.Encoder()
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "configured",
		slog.String("mode", enc.Mode().String()),
		slog.Bool("preserve_case", enc.PreservesCase()),
		slog.String("table", cfg.Table),
		slog.Bool("check", check),
	)

	p := &processor{
		enc:       enc,
		out:       r.Stdout,
		report:    r.Stderr,
		log:       log,
		maxLength: cfg.MaxLength,
		stripHTML: cfg.StripHTML,
	}
	if check {
		return p.run(ctx, inputs, r.Stdin, p.check)
	}
	return p.run(ctx, inputs, r.Stdin, p.encode)
}

func (r *Runner) newLogger(cfg Config) (*slog.Logger, func(), error) {
	if cfg.Quiet {
		return logger.NewNope(), func() {}, nil
	}

	outputs := []io.Writer{r.Stderr}
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, errors.Join(ErrInvalidConfig, err)
		}
		outputs = append(outputs, f)
		closeFn = func() { _ = f.Close() }
	}

	log, err := logger.New(cfg.Log, outputs, positionExtractor)
	if err != nil {
		closeFn()
		return nil, nil, errors.Join(ErrInvalidConfig, err)
	}
	return log, closeFn, nil
}

type processor struct {
	enc       *slug.Encoder
	out       io.Writer
	report    io.Writer
	log       *slog.Logger
	maxLength int
	stripHTML bool
	invalid   int
	total     int
}

type handleFunc func(ctx context.Context, line string) error

func (p *processor) run(ctx context.Context, args []string, stdin io.Reader, handle handleFunc) error {
	if len(args) > 0 {
		for i, arg := range args {
			if err := p.step(ctx, sourceArgs, i+1, arg, handle); err != nil {
				return err
			}
		}
		return p.result()
	}

	if stdin == nil {
		return p.result()
	}
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; sc.Scan(); n++ {
		if err := p.step(ctx, sourceStdin, n, sc.Text(), handle); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return p.result()
}

func (p *processor) step(ctx context.Context, source string, line int, text string, handle handleFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.total++
	return handle(withPosition(ctx, source, line), text)
}

func (p *processor) encode(ctx context.Context, text string) error {
	if p.stripHTML {
		text = sanitizer.StripHTML(text)
	}
	s := p.enc.Encode(text)
	if s == "" && text != "" {
		p.log.WarnContext(ctx, "input produced an empty slug", slog.String("text", text))
	}
	p.log.DebugContext(ctx, "encoded", slog.String("text", text), slog.String("slug", s))
	_, err := fmt.Fprintln(p.out, s)
	return err
}

// check reports every invalid input on the report writer, independent of the
// log level, and logs the details at debug level.
func (p *processor) check(ctx context.Context, text string) error {
	var problem string
	switch {
	case !p.enc.Valid(text):
		want := p.enc.Encode(text)
		problem = fmt.Sprintf("invalid slug, want %q", want)
		p.log.DebugContext(ctx, "invalid slug", slog.String("slug", text), slog.String("want", want))
	case p.maxLength > 0 && len(text) > p.maxLength:
		problem = fmt.Sprintf("slug too long, max length %d", p.maxLength)
		p.log.DebugContext(ctx, "slug too long", slog.String("slug", text), slog.Int("max_length", p.maxLength))
	default:
		return nil
	}

	p.invalid++
	pos, _ := positionFrom(ctx)
	_, err := fmt.Fprintf(p.report, "%s: %q: %s\n", pos, text, problem)
	return err
}

func (p *processor) result() error {
	if p.invalid > 0 {
		return fmt.Errorf("%w: %d of %d inputs", ErrInvalidSlug, p.invalid, p.total)
	}
	return nil
}
