package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	contentsafety "github.com/contentsafety/gosdk"
)

// config is read from the environment. A .env file in the working directory is loaded first if
// present; variables already set in the environment win.
type config struct {
	Endpoint         string
	SubscriptionKey  string
	AADToken         string
	UseAzureIdentity bool
	LogLevel         zerolog.Level
}

func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		Endpoint:        getenv("CONTENT_SAFETY_ENDPOINT"),
		SubscriptionKey: getenv("CONTENT_SAFETY_KEY"),
		AADToken:        getenv("CONTENT_SAFETY_AAD_TOKEN"),
		LogLevel:        zerolog.InfoLevel,
	}
	if cfg.Endpoint == "" {
		return cfg, errors.New("CONTENT_SAFETY_ENDPOINT environment variable is required")
	}

	if v := getenv("CONTENT_SAFETY_USE_AZURE_IDENTITY"); v != "" {
		use, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid CONTENT_SAFETY_USE_AZURE_IDENTITY %q: %w", v, err)
		}
		cfg.UseAzureIdentity = use
	}

	if v := getenv("CONTENT_SAFETY_LOG_LEVEL"); v != "" {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid CONTENT_SAFETY_LOG_LEVEL %q: %w", v, err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger = logger.Level(cfg.LogLevel)

	os.Exit(run(context.Background(), cfg, os.Args[1:], os.Stdin, os.Stdout, logger))
}

// run checks one snippet and writes exactly one line to out. The snippet is read from the file
// named by the first argument, or from in when there is none. It returns the process exit code.
func run(ctx context.Context, cfg config, args []string, in io.Reader, out io.Writer, logger zerolog.Logger) int {
	code, err := readSnippet(args, in)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read code snippet")
		return 1
	}

	opts := clientOptions(cfg, logger)
	if cfg.UseAzureIdentity {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			logger.Error().Err(err).Msg("failed to create Azure credential")
			return 1
		}
		opts = append(opts, contentsafety.WithTokenCredential(cred))
	}

	client, err := contentsafety.New(opts...)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create client")
		return 1
	}
	defer client.Close()

	logger.Debug().
		Str("url", contentsafety.ProtectedCodeURL(cfg.Endpoint)).
		Int("code_bytes", len(code)).
		Msg("checking code snippet")

	result, err := client.DetectProtectedCode(ctx, code)
	return report(out, result, err)
}

func clientOptions(cfg config, logger zerolog.Logger) []contentsafety.Option {
	return []contentsafety.Option{
		contentsafety.WithEndpoint(cfg.Endpoint),
		contentsafety.WithSubscriptionKey(cfg.SubscriptionKey),
		contentsafety.WithAADToken(cfg.AADToken),
		contentsafety.WithLogger(logger),
	}
}

func readSnippet(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// report prints the result or the error as a single line and returns the exit code.
func report(out io.Writer, result *contentsafety.DetectionResult, err error) int {
	if err == nil {
		var compact bytes.Buffer
		if cerr := json.Compact(&compact, result.Raw); cerr != nil {
			compact.Reset()
			compact.Write(result.Raw)
		}
		fmt.Fprintf(out, "Analysis result: %s\n", compact.Bytes())
		return 0
	}

	var apiErr *contentsafety.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintf(out, "Error: %d %s\n", apiErr.StatusCode, apiErr.Body)
		return 1
	}

	var transportErr *contentsafety.TransportError
	if errors.As(err, &transportErr) {
		fmt.Fprintf(out, "Error: %v\n", transportErr.Err)
		return 1
	}

	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
