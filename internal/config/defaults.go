package config

// Defaults applied by the option resolver when a field is neither set by a
// flag nor answered interactively.
const (
	DefaultRuntime  = RuntimeNode
	DefaultDatabase = DatabaseNone
	DefaultTemplate = TemplateAPI
	DefaultRoutes   = RoutesCRUD

	// DefaultDevPort is the port the generated dev server listens on.
	DefaultDevPort = 3000

	// DefaultDevHost is the interface the generated dev server binds to.
	DefaultDevHost = "localhost"

	// FrameworkPackage is the npm package generated projects depend on.
	FrameworkPackage = "@voltjs/core"

	// FrameworkVersion is the framework release pinned into generated
	// package manifests.
	FrameworkVersion = "^1.4.0"
)

// ApplyDefaults fills every unset field of a ProjectConfig with its
// documented default. Used in non-interactive mode in place of the wizard.
func ApplyDefaults(cfg *ProjectConfig) {
	if cfg.Runtime == "" {
		cfg.Runtime = DefaultRuntime
	}
	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}
	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}
}
