package commands

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/helperkit/cryptokit/pkg/aescbc"
	"github.com/helperkit/cryptokit/pkg/config"
	"github.com/helperkit/cryptokit/pkg/logger"
)

// EnvPrefix is prepended to every environment variable the CLI reads.
const EnvPrefix = "CRYPTOKIT_"

// Config holds the CLI settings read from the environment.
type Config struct {
	Env string `env:"ENV" envDefault:"development"`

	// CipherKey is the key material; how it is decoded depends on
	// CipherKeyFormat and, for raw keys, CipherKeyEncoding.
	CipherKey         string `env:"CIPHER_KEY"`
	CipherKeyFormat   string `env:"CIPHER_KEY_FORMAT" envDefault:"base64"`
	CipherKeyEncoding string `env:"CIPHER_KEY_ENCODING" envDefault:"utf-8"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`
}

// LoadConfig loads the given .env files (or ./.env when none are given, which
// may be absent) and parses the CRYPTOKIT_ prefixed environment.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := config.LoadEnv(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Key resolves the cipher key. A non-empty override replaces the configured
// key material but is decoded the same way.
func (c Config) Key(override string) ([]byte, error) {
	material := c.CipherKey
	if override != "" {
		material = override
	}
	if material == "" {
		return nil, ErrKeyNotConfigured
	}

	if aescbc.KeyFormat(c.CipherKeyFormat) == aescbc.KeyFormatRaw {
		return aescbc.KeyFromString(material, aescbc.KeyEncoding(c.CipherKeyEncoding))
	}
	return aescbc.ParseKey(material, aescbc.KeyFormat(c.CipherKeyFormat))
}

// NewLogger builds the CLI logger. Logs go to stderr so stdout only carries
// command output.
func (c Config) NewLogger() (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(c.Env, "cryptokit"),
		logger.WithOutput(os.Stderr),
	}

	if c.LogLevel != "" {
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	switch logger.Format(c.LogFormat) {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	default:
		return nil, ErrInvalidOutputFormat
	}

	return logger.New(opts...), nil
}
