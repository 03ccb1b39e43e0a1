package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/slugmin/pkg/logger"
	"github.com/dmitrymomot/slugmin/pkg/slug"
	"github.com/dmitrymomot/slugmin/pkg/translit"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SLUGMIN_"

// Config is the slugmin command configuration.
// Flags override environment variables, which override the defaults below.
type Config struct {
	Mode         slug.Mode         `env:"MODE" envDefault:"strict"`
	Table        string            `env:"TABLE" envDefault:"unidecode"`
	Reserved     []string          `env:"RESERVED" envSeparator:","`
	Replace      map[string]string `env:"REPLACE" envSeparator:"," envKeyValSeparator:"="`
	StripChars   string            `env:"STRIP_CHARS"`
	MaxLength    int               `env:"MAX_LENGTH"`
	MinLength    int               `env:"MIN_LENGTH"`
	Suffix       int               `env:"SUFFIX"`
	PreserveCase bool              `env:"PRESERVE_CASE"`
	StripHTML    bool              `env:"STRIP_HTML"`
	Quiet        bool              `env:"QUIET"`
	LogFile      string            `env:"LOG_FILE"`
	Log          logger.Config
}

// LoadConfig reads the dotenv file at path, if it exists, and overlays
// environ on top of it. An empty path skips the dotenv file.
func LoadConfig(path string, environ map[string]string) (Config, error) {
	vars := make(map[string]string, len(environ))
	if path != "" {
		file, err := godotenv.Read(path)
		switch {
		case err == nil:
			maps.Copy(vars, file)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, errors.Join(ErrInvalidConfig, fmt.Errorf("read %s: %w", path, err))
		}
	}
	maps.Copy(vars, environ)

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: vars,
	}); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Validate checks values that the environment parser cannot.
func (c Config) Validate() error {
	var errs []error
	if _, err := translit.ByName(c.Table); err != nil {
		errs = append(errs, err)
	}
	if c.MaxLength < 0 {
		errs = append(errs, fmt.Errorf("max length must not be negative, got %d", c.MaxLength))
	}
	if c.MinLength < 0 {
		errs = append(errs, fmt.Errorf("min length must not be negative, got %d", c.MinLength))
	}
	if c.Suffix < 0 {
		errs = append(errs, fmt.Errorf("suffix length must not be negative, got %d", c.Suffix))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// Encoder builds the slug encoder described by c.
func (c Config) Encoder() (*slug.Encoder, error) {
	table, err := translit.ByName(c.Table)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return slug.New(
		slug.WithMode(c.Mode),
		slug.PreserveCase(c.PreserveCase),
		slug.WithTransliterator(table),
		slug.StripChars(c.StripChars),
		slug.CustomReplace(c.Replace),
		slug.MaxLength(c.MaxLength),
		slug.MinLength(c.MinLength),
		slug.WithSuffix(c.Suffix),
		slug.ReservedSlugs(c.Reserved...),
	), nil
}
