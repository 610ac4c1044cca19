package cli

import (
	"context"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/habitloop/reflector/pkg/adapter"
	"github.com/habitloop/reflector/pkg/profile"
	"github.com/habitloop/reflector/pkg/usecase/summary"
	"github.com/habitloop/reflector/pkg/utils/logging"
)

// config holds configuration values
type config struct {
	// Logging / profile
	logLevel    string
	profilePath string

	// Provider
	provider        string
	anthropicAPIKey string
	claudeModel     string
	geminiProject   string
	geminiLocation  string
	llmTimeout      time.Duration

	// Tracker
	trackerURL string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("REFLECTOR_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.StringFlag{
			Name:        "profile",
			Usage:       "Path to YAML profile file (person, language, interests)",
			Sources:     cli.EnvVars("REFLECTOR_PROFILE"),
			Destination: &cfg.profilePath,
		},
	}
}

// llmFlags returns flags for LLM-related configuration with destination config
func llmFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "provider",
			Usage:       "Summarization provider (claude or gemini)",
			Value:       "claude",
			Sources:     cli.EnvVars("REFLECTOR_PROVIDER"),
			Destination: &cfg.provider,
		},
		&cli.StringFlag{
			Name:        "anthropic-api-key",
			Usage:       "Anthropic API key",
			Sources:     cli.EnvVars("ANTHROPIC_API_KEY"),
			Destination: &cfg.anthropicAPIKey,
		},
		&cli.StringFlag{
			Name:        "claude-model",
			Usage:       "Claude model override",
			Sources:     cli.EnvVars("REFLECTOR_CLAUDE_MODEL"),
			Destination: &cfg.claudeModel,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for Gemini",
			Sources:     cli.EnvVars("GEMINI_PROJECT_ID"),
			Destination: &cfg.geminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for Gemini",
			Value:       "us-central1",
			Sources:     cli.EnvVars("GEMINI_LOCATION"),
			Destination: &cfg.geminiLocation,
		},
		&cli.DurationFlag{
			Name:        "llm-timeout",
			Usage:       "Timeout per provider call",
			Value:       60 * time.Second,
			Sources:     cli.EnvVars("REFLECTOR_LLM_TIMEOUT"),
			Destination: &cfg.llmTimeout,
		},
	}
}

// trackerFlags returns flags for the upstream tracker service
func trackerFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tracker-url",
			Usage:       "Base URL of the tracker service",
			Value:       "http://localhost:3001",
			Sources:     cli.EnvVars("REFLECTOR_TRACKER_URL"),
			Destination: &cfg.trackerURL,
		},
	}
}

// setupLogging installs the process-wide logger at the configured level
func (cfg *config) setupLogging() {
	logging.SetDefault(logging.New(cfg.logLevel, os.Stdout))
}

// newProfile loads the YAML profile, or the defaults when no path is set
func (cfg *config) newProfile() (*profile.Profile, error) {
	if cfg.profilePath == "" {
		return profile.Default(), nil
	}
	p, err := profile.Load(cfg.profilePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load profile")
	}
	return p, nil
}

// newSummarizer creates the configured provider adapter
func (cfg *config) newSummarizer(ctx context.Context) (adapter.Summarizer, error) {
	switch cfg.provider {
	case "claude":
		if cfg.anthropicAPIKey == "" {
			return nil, goerr.New("anthropic-api-key is required")
		}
		var opts []adapter.ClaudeOption
		if cfg.claudeModel != "" {
			opts = append(opts, adapter.WithClaudeModel(cfg.claudeModel))
		}
		return adapter.NewClaude(cfg.anthropicAPIKey, opts...), nil
	case "gemini":
		if cfg.geminiProject == "" {
			return nil, goerr.New("gemini-project is required")
		}
		if cfg.geminiLocation == "" {
			return nil, goerr.New("gemini-location is required")
		}
		gemini, err := adapter.NewGemini(ctx, cfg.geminiProject, cfg.geminiLocation)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create gemini adapter")
		}
		return gemini, nil
	default:
		return nil, goerr.New("unknown provider", goerr.V("provider", cfg.provider))
	}
}

// newTracker creates the tracker service client
func (cfg *config) newTracker() (adapter.Tracker, error) {
	if cfg.trackerURL == "" {
		return nil, goerr.New("tracker-url is required")
	}
	return adapter.NewTracker(cfg.trackerURL), nil
}

// newUseCase wires the summary usecase from the configured adapters
func (cfg *config) newUseCase(ctx context.Context) (*summary.UseCase, error) {
	provider, err := cfg.newSummarizer(ctx)
	if err != nil {
		return nil, err
	}
	tracker, err := cfg.newTracker()
	if err != nil {
		return nil, err
	}
	prof, err := cfg.newProfile()
	if err != nil {
		return nil, err
	}

	return summary.New(provider, tracker,
		summary.WithProfile(prof),
		summary.WithTimeout(cfg.llmTimeout),
	), nil
}
