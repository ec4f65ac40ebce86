// Package config defines the configuration records consumed by every
// file-rendering component of the volt CLI: the project-level ProjectConfig
// produced by "volt init", the per-resource ModuleSpec consumed by
// "volt module create", and the volt.yaml project manifest that generated
// projects carry on disk.
package config

import (
	"slices"
	"strings"
)

// Runtime is the deployment execution environment for a generated project.
type Runtime string

const (
	RuntimeNode              Runtime = "node"
	RuntimeVercelEdge        Runtime = "vercel-edge"
	RuntimeAWSLambda         Runtime = "aws-lambda"
	RuntimeCloudflareWorkers Runtime = "cloudflare-workers"
)

// Runtimes lists all supported runtime targets in prompt order.
var Runtimes = []Runtime{RuntimeNode, RuntimeVercelEdge, RuntimeAWSLambda, RuntimeCloudflareWorkers}

// IsValid reports whether r is a supported runtime target.
func (r Runtime) IsValid() bool {
	return slices.Contains(Runtimes, r)
}

// Database is the database engine a generated project is wired to.
type Database string

const (
	DatabaseMySQL      Database = "mysql"
	DatabasePostgreSQL Database = "postgresql"
	DatabaseSQLite     Database = "sqlite"
	DatabaseMongoDB    Database = "mongodb"
	DatabaseRedis      Database = "redis"
	DatabaseDrizzle    Database = "drizzle"
	DatabaseNone       Database = "none"
)

// Databases lists all supported database engines in prompt order.
var Databases = []Database{
	DatabaseNone, DatabasePostgreSQL, DatabaseMySQL, DatabaseSQLite,
	DatabaseMongoDB, DatabaseRedis, DatabaseDrizzle,
}

// IsValid reports whether d is a supported database engine.
func (d Database) IsValid() bool {
	return slices.Contains(Databases, d)
}

// Template is the project layout preset.
type Template string

const (
	TemplateAPI          Template = "api"
	TemplateFullstack    Template = "fullstack"
	TemplateMicroservice Template = "microservice"
)

// Templates lists all supported project templates in prompt order.
var Templates = []Template{TemplateAPI, TemplateFullstack, TemplateMicroservice}

// IsValid reports whether t is a supported project template.
func (t Template) IsValid() bool {
	return slices.Contains(Templates, t)
}

// Feature tags understood by the template renderers. Unknown tags are
// accepted and simply select no template branch.
const (
	FeatureAuth           = "auth"
	FeatureCORS           = "cors"
	FeatureCompression    = "compression"
	FeatureWebSocket      = "websocket"
	FeatureDocs           = "docs"
	FeatureRateLimit      = "rate-limit"
	FeatureCache          = "cache"
	FeatureCircuitBreaker = "circuit-breaker"
	FeatureMonitoring     = "monitoring"
	FeatureTesting        = "testing"
	FeatureDatabase       = "database"
)

// KnownFeatures lists the feature tags that select template branches,
// in prompt order.
var KnownFeatures = []string{
	FeatureAuth, FeatureCORS, FeatureCompression, FeatureWebSocket,
	FeatureDocs, FeatureRateLimit, FeatureCache, FeatureCircuitBreaker,
	FeatureMonitoring, FeatureTesting,
}

// ProjectConfig is the fully-resolved configuration for one "volt init"
// invocation. It is immutable after resolution; every renderer is a pure
// function over it.
type ProjectConfig struct {
	Name        string
	Runtime     Runtime
	Database    Database
	Template    Template
	Features    []string
	SkipGit     bool
	SkipInstall bool
}

// HasFeature reports whether the given feature tag was selected.
func (c *ProjectConfig) HasFeature(tag string) bool {
	return slices.Contains(c.Features, tag)
}

// ParseFeatures splits a comma-separated feature flag value into a trimmed,
// deduplicated tag list. Unknown tags are kept: they are inert, not errors.
func ParseFeatures(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" || slices.Contains(tags, tag) {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// RouteStyle selects the route table flavor generated for a module.
type RouteStyle string

const (
	RoutesCRUD    RouteStyle = "crud"
	RoutesREST    RouteStyle = "rest"
	RoutesGraphQL RouteStyle = "graphql"
)

// RouteStyles lists the supported route table flavors.
var RouteStyles = []RouteStyle{RoutesCRUD, RoutesREST, RoutesGraphQL}

// IsValid reports whether s is a supported route style.
func (s RouteStyle) IsValid() bool {
	return slices.Contains(RouteStyles, s)
}

// ModuleSpec describes one "volt module create" invocation. It is built from
// command flags, consumed once to render a fixed file set, and discarded.
type ModuleSpec struct {
	Name       string
	Features   []string
	Middleware []string
	AuthRoles  []string
	Database   Database
	Routes     RouteStyle
	WithTests  bool
	WithDocs   bool
}

// HasFeature reports whether the given feature tag was selected.
func (s *ModuleSpec) HasFeature(tag string) bool {
	return slices.Contains(s.Features, tag)
}
