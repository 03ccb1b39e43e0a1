package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/slugmin/pkg/slug"
	"github.com/dmitrymomot/slugmin/pkg/translit"
)

// modeValue lets a slug.Mode be set from the command line.
type modeValue struct {
	mode *slug.Mode
}

func (v modeValue) String() string {
	if v.mode == nil {
		return slug.Strict.String()
	}
	return v.mode.String()
}

func (v modeValue) Set(s string) error {
	return v.mode.UnmarshalText([]byte(s))
}

func (modeValue) Type() string {
	return "mode"
}

// newFlagSet binds flags to cfg. Values already in cfg become the defaults.
// Flags may appear before or after the check command.
func newFlagSet(name string, cfg *Config, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage:\n  %[1]s [flags] [text...]\n  %[1]s [flags] check [slug...]\n\n", name)
		fmt.Fprintln(output, "Converts each argument, or each line of stdin, to a slug.")
		fmt.Fprintln(output, "The check command reports inputs that are not valid slugs.")
		fmt.Fprintln(output, "Use -- before the text to slugify the word \"check\" itself.")
		fmt.Fprintf(output, "\nFlags:\n%s", fs.FlagUsages())
	}

	fs.VarP(modeValue{mode: &cfg.Mode}, "mode", "m", "slug mode: strict or normal")
	fs.BoolVarP(&cfg.PreserveCase, "preserve-case", "c", cfg.PreserveCase, "keep letter case (normal mode only)")
	fs.StringVarP(&cfg.Table, "table", "t", cfg.Table, "transliteration table: "+strings.Join(translit.Names(), ", "))
	fs.BoolVar(&cfg.StripHTML, "strip-html", cfg.StripHTML, "remove HTML tags and decode entities before encoding")
	fs.StringVar(&cfg.StripChars, "strip-chars", cfg.StripChars, "remove these characters before encoding")
	fs.StringToStringVar(&cfg.Replace, "replace", cfg.Replace, "replace substrings before encoding, e.g. &=and,@=at")
	fs.IntVar(&cfg.MaxLength, "max-length", cfg.MaxLength, "truncate slugs to at most this many characters (0 = unlimited)")
	fs.IntVar(&cfg.MinLength, "min-length", cfg.MinLength, "pad shorter slugs with a random suffix")
	fs.IntVar(&cfg.Suffix, "suffix", cfg.Suffix, "append this many random characters")
	fs.StringSliceVar(&cfg.Reserved, "reserved", cfg.Reserved, "comma-separated slugs that get a random suffix")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format: text or json")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "also append logs to this file")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "discard all log output")

	return fs
}
