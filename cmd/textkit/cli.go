package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MarkoPoloResearchLab/textkit"
	"github.com/spf13/cobra"
)

const (
	flagInput   = "input"
	flagFormat  = "format"
	flagWhich   = "which"
	flagSubject = "subject"
	flagTTL     = "ttl"
)

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "textkit",
		Short: "Capitalize and trim collections of text",
	}
	rootCommand.SilenceUsage = true
	rootCommand.AddCommand(newCapitalizeCommand())
	rootCommand.AddCommand(newTrimCommand())
	rootCommand.AddCommand(newServeCommand())
	rootCommand.AddCommand(newGenerateJwtKeyCommand())
	rootCommand.AddCommand(newIssueTokenCommand())
	return rootCommand
}

func addCollectionFlags(command *cobra.Command) {
	command.Flags().String(flagInput, "", "YAML or JSON file holding a sequence of strings")
	command.Flags().String(flagFormat, outputFormatText, "output format: text, json or yaml")
}

func newCapitalizeCommand() *cobra.Command {
	capitalizeCommand := &cobra.Command{
		Use:   "capitalize [values...]",
		Short: "Upper-case the first character and lower-case the rest of each value",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, formatName, inputError := commandCollection(cmd, args)
			if inputError != nil {
				return inputError
			}
			return writeCollection(cmd.OutOrStdout(), textkit.Capitalize(values), formatName)
		},
	}
	addCollectionFlags(capitalizeCommand)
	return capitalizeCommand
}

func newTrimCommand() *cobra.Command {
	trimCommand := &cobra.Command{
		Use:   "trim [values...]",
		Short: "Strip whitespace from the start and/or end of each value",
		Long: `Strip ASCII whitespace (space, tab, newline, carriage return, form feed,
vertical tab) from the start and/or end of each value.

Values read from standard input are split into lines first; the line
terminator, including the carriage return of a CRLF ending, is removed
before trimming. Values passed as arguments or through --input keep every
character.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			whichText, _ := cmd.Flags().GetString(flagWhich)
			trimSide, parseSideError := textkit.ParseTrimSide(whichText)
			if parseSideError != nil {
				return fmt.Errorf("--%s: %w", flagWhich, parseSideError)
			}
			values, formatName, inputError := commandCollection(cmd, args)
			if inputError != nil {
				return inputError
			}
			trimmed, trimError := textkit.Trim(values, trimSide)
			if trimError != nil {
				return trimError
			}
			return writeCollection(cmd.OutOrStdout(), trimmed, formatName)
		},
	}
	addCollectionFlags(trimCommand)
	trimCommand.Flags().String(flagWhich, textkit.TrimBoth.String(), "side to trim: both, left or right")
	return trimCommand
}

func commandCollection(cmd *cobra.Command, args []string) ([]string, string, error) {
	formatName, _ := cmd.Flags().GetString(flagFormat)
	if formatError := validateOutputFormat(formatName); formatError != nil {
		return nil, "", formatError
	}
	inputPath, _ := cmd.Flags().GetString(flagInput)
	values, readError := readCollection(args, inputPath, cmd.InOrStdin())
	if readError != nil {
		return nil, "", readError
	}
	return values, formatName, nil
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the textkit HTTP server",
		RunE:  runServeCommand,
	}
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	serveContext, stopSignals := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	gatewayConfig, loadConfigError := loadConfig(serveContext)
	if loadConfigError != nil {
		return fmt.Errorf("config error: %w", loadConfigError)
	}
	logger, loggerError := newLogger(cmd.ErrOrStderr(), gatewayConfig.LogLevel, gatewayConfig.LogFormat)
	if loggerError != nil {
		return fmt.Errorf("config error: %w", loggerError)
	}

	httpServer := newHTTPServer(gatewayConfig, logger)
	logger.Info().
		Str("address", gatewayConfig.ListenAddress).
		Bool("auth", gatewayConfig.requireAuth()).
		Int("origins", len(gatewayConfig.AllowedOrigins)).
		Msg("textkit listening")
	return runHTTPServer(serveContext, httpServer, logger)
}

const secretByteLength = 32

func newGenerateJwtKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-jwt-key",
		Short: "Generate a HS256 signing key for textkit bearer tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenSecret, tokenSecretError := generateRandomHex(secretByteLength)
			if tokenSecretError != nil {
				return fmt.Errorf("generate %s: %w", envKeyJwtHmacKey, tokenSecretError)
			}
			if _, writeError := fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", envKeyJwtHmacKey, tokenSecret); writeError != nil {
				return fmt.Errorf("write %s: %w", envKeyJwtHmacKey, writeError)
			}
			return nil
		},
	}
}

func newIssueTokenCommand() *cobra.Command {
	issueTokenCommand := &cobra.Command{
		Use:   "issue-token",
		Short: "Print a bearer token for the textkit HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			gatewayConfig, loadConfigError := loadConfig(cmd.Context())
			if loadConfigError != nil {
				return fmt.Errorf("config error: %w", loadConfigError)
			}
			if !gatewayConfig.requireAuth() {
				return fmt.Errorf("missing %s", envKeyJwtHmacKey)
			}

			subject, _ := cmd.Flags().GetString(flagSubject)
			tokenLifetime, _ := cmd.Flags().GetDuration(flagTTL)
			if tokenLifetime == 0 {
				tokenLifetime = gatewayConfig.TokenLifetime
			}

			signedToken, issueError := issueAccessToken(gatewayConfig.JwtHmacKey, strings.TrimSpace(subject), tokenLifetime, timeNow())
			if issueError != nil {
				return fmt.Errorf("issue token: %w", issueError)
			}
			if _, writeError := fmt.Fprintln(cmd.OutOrStdout(), signedToken); writeError != nil {
				return fmt.Errorf("write token: %w", writeError)
			}
			return nil
		},
	}
	issueTokenCommand.Flags().String(flagSubject, "", "token subject (caller name)")
	issueTokenCommand.Flags().Duration(flagTTL, 0, "token lifetime (default TOKEN_LIFETIME_SECONDS)")
	return issueTokenCommand
}

var randomRead = rand.Read

func generateRandomHex(byteLength int) (string, error) {
	randomBytes := make([]byte, byteLength)
	if _, readError := randomRead(randomBytes); readError != nil {
		return "", fmt.Errorf("read random bytes: %w", readError)
	}
	return hex.EncodeToString(randomBytes), nil
}
