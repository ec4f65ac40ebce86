package config

import (
	"reflect"
	"testing"
)

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "whitespace only", raw: "   ", want: nil},
		{name: "single", raw: "auth", want: []string{"auth"}},
		{name: "trims and splits", raw: " auth, cors ,websocket", want: []string{"auth", "cors", "websocket"}},
		{name: "deduplicates", raw: "auth,auth,cors", want: []string{"auth", "cors"}},
		{name: "drops empty segments", raw: "auth,,cors,", want: []string{"auth", "cors"}},
		// Unknown tags are inert, not errors.
		{name: "keeps unknown tags", raw: "auth,telemetry,blockchain", want: []string{"auth", "telemetry", "blockchain"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFeatures(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFeatures(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEnumValidation(t *testing.T) {
	for _, r := range Runtimes {
		if !r.IsValid() {
			t.Errorf("runtime %q should be valid", r)
		}
	}
	if Runtime("deno").IsValid() {
		t.Error("unknown runtime should be invalid")
	}
	for _, d := range Databases {
		if !d.IsValid() {
			t.Errorf("database %q should be valid", d)
		}
	}
	if Database("oracle").IsValid() {
		t.Error("unknown database should be invalid")
	}
	for _, tmpl := range Templates {
		if !tmpl.IsValid() {
			t.Errorf("template %q should be valid", tmpl)
		}
	}
	if Template("spa").IsValid() {
		t.Error("unknown template should be invalid")
	}
	if RouteStyle("soap").IsValid() {
		t.Error("unknown route style should be invalid")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &ProjectConfig{Name: "demo"}
	ApplyDefaults(cfg)

	if cfg.Runtime != DefaultRuntime {
		t.Errorf("runtime = %q, want %q", cfg.Runtime, DefaultRuntime)
	}
	if cfg.Database != DefaultDatabase {
		t.Errorf("database = %q, want %q", cfg.Database, DefaultDatabase)
	}
	if cfg.Template != DefaultTemplate {
		t.Errorf("template = %q, want %q", cfg.Template, DefaultTemplate)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &ProjectConfig{
		Name:     "demo",
		Runtime:  RuntimeCloudflareWorkers,
		Database: DatabaseSQLite,
		Template: TemplateMicroservice,
	}
	ApplyDefaults(cfg)

	if cfg.Runtime != RuntimeCloudflareWorkers || cfg.Database != DatabaseSQLite || cfg.Template != TemplateMicroservice {
		t.Errorf("explicit values were overwritten: %+v", cfg)
	}
}

func TestHasFeature(t *testing.T) {
	cfg := &ProjectConfig{Features: []string{"auth", "websocket"}}
	if !cfg.HasFeature(FeatureAuth) {
		t.Error("expected auth feature")
	}
	if cfg.HasFeature(FeatureCache) {
		t.Error("unexpected cache feature")
	}
}
