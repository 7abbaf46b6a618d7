// Package main provides the cryptokit command-line tool: AES-256-CBC
// encryption, SHA-256 digests and random code generation.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/helperkit/cryptokit/cmd/cryptokit/commands"
	"github.com/helperkit/cryptokit/pkg/logger"
)

// app carries state resolved once in the root Before hook.
type app struct {
	cfg commands.Config
	log *slog.Logger
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := commands.LoadConfig(cmd.StringSlice("env-file")...)
	if err != nil {
		return ctx, err
	}
	log, err := cfg.NewLogger()
	if err != nil {
		return ctx, err
	}
	a.cfg, a.log = cfg, log
	return ctx, nil
}

func (a *app) key(cmd *cli.Command) ([]byte, error) {
	return a.cfg.Key(cmd.String("key"))
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func keyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "key",
		Aliases: []string{"k"},
		Usage:   "Cipher key, decoded per CRYPTOKIT_CIPHER_KEY_FORMAT (overrides CRYPTOKIT_CIPHER_KEY)",
	}
}

func encodingFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Value:   "base64",
		Usage:   "Byte encoding: 'base64' or 'hex'",
	}
}

func textFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "text",
		Aliases:  []string{"t"},
		Required: required,
		Usage:    "Input text",
	}
}

func newCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "cryptokit",
		Usage:   "Symmetric encryption, hashing and random code helpers",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load environment from these .env files (default: ./.env if present)",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			{
				Name:  "keygen",
				Usage: "Generate a new random 32-byte cipher key",
				Flags: []cli.Flag{encodingFlag(), outputFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunKeygen(cmd.Root().Writer, cmd.String("encoding"), cmd.String("output"))
				},
			},
			{
				Name:  "iv",
				Usage: "Generate a new random 16-byte initialization vector",
				Flags: []cli.Flag{encodingFlag(), outputFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateIV(cmd.Root().Writer, cmd.String("encoding"), cmd.String("output"))
				},
			},
			{
				Name:  "encrypt",
				Usage: "Encrypt text with AES-256-CBC",
				Flags: []cli.Flag{
					keyFlag(),
					textFlag(true),
					&cli.StringFlag{
						Name:  "iv",
						Usage: "Base64 IV (omit to generate a fresh one)",
					},
					outputFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					key, err := a.key(cmd)
					if err != nil {
						return err
					}
					defer clear(key)
					return commands.RunEncrypt(ctx, a.log, cmd.Root().Writer, key,
						cmd.String("text"), cmd.String("iv"), cmd.String("output"))
				},
			},
			{
				Name:  "decrypt",
				Usage: "Decrypt AES-256-CBC ciphertext",
				Flags: []cli.Flag{
					keyFlag(),
					&cli.StringFlag{
						Name:     "ciphertext",
						Aliases:  []string{"c"},
						Required: true,
						Usage:    "Base64 ciphertext",
					},
					&cli.StringFlag{
						Name:     "iv",
						Required: true,
						Usage:    "Base64 IV used for encryption",
					},
					outputFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					key, err := a.key(cmd)
					if err != nil {
						return err
					}
					defer clear(key)
					return commands.RunDecrypt(ctx, a.log, cmd.Root().Writer, key,
						cmd.String("ciphertext"), cmd.String("iv"), cmd.String("output"))
				},
			},
			{
				Name:  "seal",
				Usage: "Encrypt text into a self-contained base64 token (IV included)",
				Flags: []cli.Flag{keyFlag(), textFlag(true), outputFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					key, err := a.key(cmd)
					if err != nil {
						return err
					}
					defer clear(key)
					return commands.RunSeal(ctx, a.log, cmd.Root().Writer, key, cmd.String("text"), cmd.String("output"))
				},
			},
			{
				Name:  "open",
				Usage: "Decrypt a token produced by seal",
				Flags: []cli.Flag{
					keyFlag(),
					&cli.StringFlag{
						Name:     "sealed",
						Aliases:  []string{"s"},
						Required: true,
						Usage:    "Base64 token",
					},
					outputFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					key, err := a.key(cmd)
					if err != nil {
						return err
					}
					defer clear(key)
					return commands.RunOpen(ctx, a.log, cmd.Root().Writer, key, cmd.String("sealed"), cmd.String("output"))
				},
			},
			{
				Name:  "hash",
				Usage: "Print the SHA-256 hex digest of text",
				Flags: []cli.Flag{textFlag(false), outputFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunHash(cmd.Root().Writer, cmd.String("text"), cmd.String("output"))
				},
			},
			{
				Name:  "verify-hash",
				Usage: "Check text against a SHA-256 hex digest",
				Flags: []cli.Flag{
					textFlag(false),
					&cli.StringFlag{
						Name:     "digest",
						Aliases:  []string{"d"},
						Required: true,
						Usage:    "Expected hex digest",
					},
					outputFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunVerifyHash(cmd.Root().Writer, cmd.String("text"), cmd.String("digest"), cmd.String("output"))
				},
			},
			{
				Name:  "shortcode",
				Usage: "Generate a random identifier",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "prefix",
						Aliases: []string{"p"},
						Usage:   "Prefix prepended to the code",
					},
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Usage:   "Code length (default 14, or 8 with --readable)",
					},
					&cli.BoolFlag{
						Name:    "readable",
						Aliases: []string{"r"},
						Usage:   "Use the look-alike free alphabet",
					},
					outputFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunShortcode(cmd.Root().Writer, cmd.String("prefix"), cmd.Int("length"), cmd.Bool("readable"), cmd.String("output"))
				},
			},
			{
				Name:  "random-number",
				Usage: "Generate a fixed-length numeric code",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Value:   6,
						Usage:   "Number of digits",
					},
					outputFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunRandomNumber(cmd.Root().Writer, cmd.Int("length"), cmd.String("output"))
				},
			},
		},
	}
}

func main() {
	a := &app{log: logger.New()}
	cmd := newCommand(a)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		a.log.Error("application error", logger.Error(err))
		os.Exit(1)
	}
}
