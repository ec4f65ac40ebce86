package cli

import (
	"fmt"

	"github.com/voltjs/volt-cli/internal/cli/wizard"
	"github.com/voltjs/volt-cli/internal/config"
)

// flagValues carries the init fields pinned on the command line. A nil
// Features slice means the flag was absent (distinct from --features "").
type flagValues struct {
	Runtime     string
	Database    string
	Template    string
	Features    []string
	FeaturesSet bool
}

// answerProvider supplies interactive answers for fields the flags left
// unset. Production uses the huh wizard; tests substitute canned answers.
type answerProvider func(asked func(field string) bool) (*wizard.Result, error)

// wizardProvider runs the interactive wizard.
func wizardProvider(asked func(field string) bool) (*wizard.Result, error) {
	questions := wizard.InitQuestions(asked)
	if len(questions) == 0 {
		return &wizard.Result{}, nil
	}
	return wizard.Run(questions)
}

// resolveProjectConfig merges explicit flags with interactively-collected
// answers into a fully-populated ProjectConfig. Flags take precedence; in
// non-interactive mode (nil provider) unset fields resolve to defaults.
// Unknown feature tags pass through untouched: they render no template
// branch but are not errors.
func resolveProjectConfig(name string, flags flagValues, provide answerProvider) (*config.ProjectConfig, error) {
	cfg := &config.ProjectConfig{
		Name:     name,
		Runtime:  config.Runtime(flags.Runtime),
		Database: config.Database(flags.Database),
		Template: config.Template(flags.Template),
	}
	if flags.FeaturesSet {
		cfg.Features = flags.Features
	}

	if cfg.Runtime != "" && !cfg.Runtime.IsValid() {
		return nil, fmt.Errorf("invalid --runtime value %q: must be one of: node, vercel-edge, aws-lambda, cloudflare-workers", cfg.Runtime)
	}
	if cfg.Database != "" && !cfg.Database.IsValid() {
		return nil, fmt.Errorf("invalid --database value %q: must be one of: mysql, postgresql, sqlite, mongodb, redis, drizzle, none", cfg.Database)
	}
	if cfg.Template != "" && !cfg.Template.IsValid() {
		return nil, fmt.Errorf("invalid --template value %q: must be one of: api, fullstack, microservice", cfg.Template)
	}

	if provide != nil {
		asked := func(field string) bool {
			switch field {
			case "runtime":
				return cfg.Runtime == ""
			case "database":
				return cfg.Database == ""
			case "template":
				return cfg.Template == ""
			case "features":
				return !flags.FeaturesSet
			default:
				return false
			}
		}

		result, err := provide(asked)
		if err != nil {
			return nil, err
		}
		if cfg.Runtime == "" {
			cfg.Runtime = config.Runtime(result.Runtime)
		}
		if cfg.Database == "" {
			cfg.Database = config.Database(result.Database)
		}
		if cfg.Template == "" {
			cfg.Template = config.Template(result.Template)
		}
		if !flags.FeaturesSet {
			cfg.Features = result.Features
		}
	}

	config.ApplyDefaults(cfg)
	return cfg, nil
}
