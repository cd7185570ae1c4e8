package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/pdfexport"
	"github.com/abhisek/quizgen/internal/problemgen"
)

// EnvPrefix prefixes every environment override, e.g. QUIZGEN_LOG_LEVEL.
const EnvPrefix = "QUIZGEN"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env        string     `mapstructure:"env"` // local, development or production
	Log        Log        `mapstructure:"log"`
	Generation Generation `mapstructure:"generation"`
	PDF        PDF        `mapstructure:"pdf"`
	Providers  LLM        `mapstructure:"llm"`
}

// Log configures the process logger.
type Log struct {
	Level string `mapstructure:"level"` // overrides the env default when set
	File  string `mapstructure:"file"`  // log destination; the TUI logs nowhere without it
}

// Generation carries the generator budgets.
type Generation struct {
	AttemptsPerCall    int    `mapstructure:"attempts_per_call"`
	BatchAttemptFactor int    `mapstructure:"batch_attempt_factor"`
	DistractorAttempts int    `mapstructure:"distractor_attempts"`
	Seed               uint64 `mapstructure:"seed"` // 0 seeds from the clock
}

// PDF configures document export.
type PDF struct {
	PageSize    string `mapstructure:"page_size"`
	HeaderTitle string `mapstructure:"header_title"`
	OutputDir   string `mapstructure:"output_dir"`
}

// LLM selects and configures the explanation provider.
type LLM struct {
	Provider   string        `mapstructure:"provider"`
	Model      string        `mapstructure:"model"`    // overrides the selected provider's model
	BaseURL    string        `mapstructure:"base_url"` // overrides the selected provider's endpoint
	Timeout    time.Duration `mapstructure:"timeout"`
	Anthropic  Credentials   `mapstructure:"anthropic"`
	OpenAI     Credentials   `mapstructure:"openai"`
	Gemini     Credentials   `mapstructure:"gemini"`
	OpenRouter Credentials   `mapstructure:"openrouter"`
	Retry      Retry         `mapstructure:"retry"`
}

// Credentials holds one provider's key and model.
type Credentials struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Retry mirrors llm.RetryConfig.
type Retry struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

var pageSizes = []string{"A3", "A4", "A5", "Letter", "Legal", "Tabloid"}

// Load reads .env, then config.yaml from ./config or $HOME/.config/quizgen,
// then QUIZGEN_* environment variables. Missing files are not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	paths := []string{"./config"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "quizgen"))
	}
	return LoadFrom(paths...)
}

// LoadFrom is Load without .env handling, searching only the given directories.
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys also accepted under their short or vendor names.
	_ = v.BindEnv("llm.anthropic.api_key", "QUIZGEN_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("llm.openai.api_key", "QUIZGEN_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("llm.gemini.api_key", "QUIZGEN_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("llm.openrouter.api_key", "QUIZGEN_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	_ = v.BindEnv("llm.provider", "QUIZGEN_LLM_PROVIDER", "QUIZGEN_PROVIDER")
	_ = v.BindEnv("env", "QUIZGEN_ENV", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	gen := problemgen.DefaultConfig()
	doc := pdfexport.DefaultConfig()
	ai := llm.DefaultConfig()

	v.SetDefault("env", "local")
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")

	v.SetDefault("generation.attempts_per_call", gen.AttemptsPerCall)
	v.SetDefault("generation.batch_attempt_factor", gen.BatchAttemptFactor)
	v.SetDefault("generation.distractor_attempts", gen.DistractorAttempts)
	v.SetDefault("generation.seed", 0)

	v.SetDefault("pdf.page_size", doc.PageSize)
	v.SetDefault("pdf.header_title", doc.HeaderTitle)
	v.SetDefault("pdf.output_dir", ".")

	v.SetDefault("llm.provider", ai.Provider)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", ai.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", ai.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", ai.OpenAI.Model)
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", ai.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", ai.OpenRouter.Model)
	v.SetDefault("llm.retry.max_attempts", ai.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", ai.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", ai.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", ai.Retry.Multiplier)
}

// Validate rejects values no component could run with. Provider keys are
// checked later, only when an explanation is requested.
func (c *Config) Validate() error {
	g := c.Generation
	if g.AttemptsPerCall < 0 || g.BatchAttemptFactor < 0 || g.DistractorAttempts < 0 {
		return fmt.Errorf("generation budgets must not be negative")
	}
	if !slices.Contains(pageSizes, c.PDF.PageSize) {
		return fmt.Errorf("unsupported pdf.page_size %q (want one of %s)",
			c.PDF.PageSize, strings.Join(pageSizes, ", "))
	}
	return nil
}

// Problemgen returns the generation budgets with the standard validators.
func (c *Config) Problemgen() problemgen.Config {
	cfg := problemgen.DefaultConfig()
	cfg.AttemptsPerCall = c.Generation.AttemptsPerCall
	cfg.BatchAttemptFactor = c.Generation.BatchAttemptFactor
	cfg.DistractorAttempts = c.Generation.DistractorAttempts
	return cfg
}

// Export returns the PDF layout.
func (c *Config) Export() pdfexport.Config {
	cfg := pdfexport.DefaultConfig()
	cfg.PageSize = c.PDF.PageSize
	if c.PDF.HeaderTitle != "" {
		cfg.HeaderTitle = c.PDF.HeaderTitle
	}
	return cfg
}

// LLM adapts the llm section into an llm.Config. The top-level model and
// base URL apply to the selected provider only.
func (c *Config) LLM() llm.Config {
	p := c.Providers
	cfg := llm.Config{
		Provider:   p.Provider,
		Anthropic:  llm.AnthropicConfig{APIKey: p.Anthropic.APIKey, Model: p.Anthropic.Model},
		OpenAI:     llm.OpenAIConfig{APIKey: p.OpenAI.APIKey, Model: p.OpenAI.Model},
		Gemini:     llm.GeminiConfig{APIKey: p.Gemini.APIKey, Model: p.Gemini.Model},
		OpenRouter: llm.OpenRouterConfig{APIKey: p.OpenRouter.APIKey, Model: p.OpenRouter.Model},
		Retry: llm.RetryConfig{
			MaxAttempts: p.Retry.MaxAttempts,
			InitialWait: p.Retry.InitialWait,
			MaxWait:     p.Retry.MaxWait,
			Multiplier:  p.Retry.Multiplier,
		},
		Timeout: p.Timeout,
	}

	override := func(model, baseURL *string) {
		if p.Model != "" {
			*model = p.Model
		}
		if p.BaseURL != "" {
			*baseURL = p.BaseURL
		}
	}
	switch p.Provider {
	case llm.ProviderAnthropic:
		override(&cfg.Anthropic.Model, &cfg.Anthropic.BaseURL)
	case llm.ProviderOpenAI:
		override(&cfg.OpenAI.Model, &cfg.OpenAI.BaseURL)
	case llm.ProviderGemini:
		override(&cfg.Gemini.Model, &cfg.Gemini.BaseURL)
	case llm.ProviderOpenRouter:
		override(&cfg.OpenRouter.Model, &cfg.OpenRouter.BaseURL)
	}
	return cfg
}

// IsProduction reports whether the production environment is selected.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
