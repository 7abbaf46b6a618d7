// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (falling back to `.env` in the working directory). Variables that are
//     already set are never overwritten.
//   - Load parses the environment into any struct using `env` field tags.
//   - Options narrow the lookup to a variable prefix or to an explicit map,
//     which keeps tests independent of the process environment.
//
// # Usage
//
//	type CipherConfig struct {
//	    Key       string `env:"CIPHER_KEY,required"`
//	    KeyFormat string `env:"CIPHER_KEY_FORMAT" envDefault:"base64"`
//	}
//
//	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var cfg CipherConfig
//	if err := config.Load(&cfg, config.WithPrefix("CRYPTOKIT_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
//   - `ErrParsingConfig` – env vars could not be parsed into the struct.
//   - `ErrNilPointer` – nil pointer passed to Load/MustLoad.
//   - `ErrLoadingEnvFile` – a `.env` file could not be read.
package config
