package config

import (
	"os"
	"path/filepath"
	"strconv"

	"emperror.dev/errors"
	"github.com/adrg/xdg"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
)

// Defaults for crawling the Dapr end-to-end test workflow. Everything except
// the access token can be overridden through an optional config file, but
// normally none of it needs to be: the crawler is purpose-built for dapr/dapr.
const (
	// DefaultRepository is the repository whose workflow runs are crawled,
	// in "<owner>/<name>" form.
	DefaultRepository = "dapr/dapr"

	// DefaultWorkflowName is the file name of the GitHub Actions workflow
	// whose runs are listed. The API addresses workflows by their base file
	// name (e.g., ".github/workflows/dapr-test.yml" is just "dapr-test.yml").
	DefaultWorkflowName = "dapr-test.yml"

	// DefaultOutputTarget is the file the crawler appends its findings to.
	DefaultOutputTarget = "log.txt"

	// DefaultPageSize is the number of workflow runs requested per API page.
	// It matches MaxPageSize so a crawl issues as few requests as possible.
	DefaultPageSize = 100

	// MaxPageSize is the largest page size the GitHub REST API allows.
	MaxPageSize = 100

	// EnvGitHubToken is the environment variable holding the GitHub access
	// token. The token must cover the scope of the crawled repository.
	EnvGitHubToken = "GITHUB_TOKEN"

	// ParamPerPage is the query parameter controlling the page size.
	ParamPerPage = "per_page"
)

// Config is the process-wide crawler configuration. It is built exactly once
// at startup by Load and never mutated afterwards, so it is safe to read from
// any number of goroutines without synchronization.
type Config struct {
	repository   Repository
	workflowName string
	token        Token
	hasToken     bool
	parameters   map[string]string
	outputTarget string
}

// Load initializes the configuration from the literal defaults, an optional
// config file, and the process environment.
// It is meant to be called once during process startup, before any crawling
// begins; the returned Config is immutable, and a fresh process is required
// to pick up changed values (e.g., a rotated token).
// It may optionally be called with additional directories to check for the
// config file.
// Malformed values, whether defaults or file overrides, are reported as a
// *ValidationError naming each offending field and must abort startup.
func Load(extraDirs ...string) (*Config, error) {
	raw := rawConfig{
		Repository:   DefaultRepository,
		WorkflowName: DefaultWorkflowName,
		Parameters:   map[string]string{ParamPerPage: strconv.Itoa(DefaultPageSize)},
		OutputTarget: DefaultOutputTarget,
	}

	overrides, err := loadFromFile(extraDirs)
	if err != nil {
		return nil, err
	}
	raw.apply(overrides)

	if err := raw.validate(); err != nil {
		return nil, err
	}

	repo, err := parseRepository(raw.Repository)
	if err != nil {
		return nil, &ValidationError{Fields: validation.Errors{"Repository": err}}
	}

	token, hasToken := lookupToken()
	if !hasToken {
		logrus.Debug("no access token present in environment")
	}

	return &Config{
		repository:   repo,
		workflowName: raw.WorkflowName,
		token:        token,
		hasToken:     hasToken,
		parameters:   raw.Parameters,
		outputTarget: raw.OutputTarget,
	}, nil
}

// Repository returns the identifier of the repository whose workflow runs
// are crawled. It is always well-formed on a loaded Config.
func (c *Config) Repository() Repository {
	return c.repository
}

// WorkflowName returns the workflow definition file name (e.g., "dapr-test.yml").
func (c *Config) WorkflowName() string {
	return c.workflowName
}

// AccessToken returns the GitHub access token and whether one was present in
// the environment at load time. Callers must branch on the boolean rather
// than compare the token against "": absence is an explicit state, never an
// empty string masquerading as a credential.
func (c *Config) AccessToken() (Token, bool) {
	return c.token, c.hasToken
}

// RequireAccessToken returns the access token, or ErrMissingToken when none
// was configured. Consumers that need authenticated API scope should call
// this before issuing any request so the failure happens up front instead of
// as a rate-limit surprise halfway through a crawl.
func (c *Config) RequireAccessToken() (Token, error) {
	if !c.hasToken {
		return "", ErrMissingToken
	}
	return c.token, nil
}

// RequestParameters returns the query parameters to attach to every
// paginated workflow-run request. The returned map is a fresh copy; mutating
// it does not affect the configuration.
func (c *Config) RequestParameters() map[string]string {
	return maps.Clone(c.parameters)
}

// OutputTarget returns the path of the file the crawler appends findings to.
// Writability is the consumer's concern at first write, not Load's.
func (c *Config) OutputTarget() string {
	return c.outputTarget
}

// rawConfig carries the assembled values (defaults plus any file overrides)
// before they are validated and frozen into a Config.
type rawConfig struct {
	Repository   string
	WorkflowName string
	Parameters   map[string]string
	OutputTarget string
}

func (r *rawConfig) apply(o fileOverrides) {
	if o.Repository != "" {
		r.Repository = o.Repository
	}
	if o.Workflow != "" {
		r.WorkflowName = o.Workflow
	}
	for name, value := range o.Parameters {
		r.Parameters[name] = value
	}
	if o.Output != "" {
		r.OutputTarget = o.Output
	}
}

// fileOverrides mirrors the optional config file. Zero values keep the
// defaults; parameters merge over (not replace) the default parameter set.
// The access token deliberately has no file field: it enters through the
// environment only.
type fileOverrides struct {
	Repository string            `mapstructure:"repository"`
	Workflow   string            `mapstructure:"workflow"`
	Parameters map[string]string `mapstructure:"parameters"`
	Output     string            `mapstructure:"output"`
}

func loadFromFile(extraDirs []string) (fileOverrides, error) {
	v := viper.New()

	// Viper has support for various formats, so the file can be config.yaml,
	// config.json, config.toml, and more
	// (https://github.com/spf13/viper#reading-config-files).
	v.SetConfigName("config")

	// Reasonable places to look for config files.
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, "test-crawler"))
	v.AddConfigPath("$HOME/.test-crawler")
	// Add additional custom paths (the command layer passes --config-dir
	// through here).
	for _, dir := range extraDirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			// No file anywhere on the search path; the defaults stand.
			return fileOverrides{}, nil
		}
		return fileOverrides{}, errors.Wrap(err, "failed to read crawler config file")
	}

	var overrides fileOverrides
	if err := v.Unmarshal(&overrides); err != nil {
		return fileOverrides{}, errors.Wrap(err, "failed to parse crawler config file")
	}

	logrus.WithField("path", v.ConfigFileUsed()).Debug("loaded config file overrides")
	return overrides, nil
}

// lookupToken reads the access token from the environment. A set-but-empty
// variable counts as absent: an empty string cannot authenticate anything,
// and handing it out as a "present" token would only trade a clear
// missing-credential signal for a confusing API rejection later.
func lookupToken() (Token, bool) {
	if value := os.Getenv(EnvGitHubToken); value != "" {
		return Token(value), true
	}
	return "", false
}
