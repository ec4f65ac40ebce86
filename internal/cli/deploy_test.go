package cli

import "testing"

func TestDeploySpecEnvFlagParsesToMap(t *testing.T) {
	t.Chdir(t.TempDir()) // no manifest: name falls back to the stock default

	// Before any --env flag the variable map is empty, not "production".
	spec := deploySpecFromFlags(deployCmd, "workers")
	if len(spec.Env) != 0 {
		t.Errorf("env = %v, want empty without --env", spec.Env)
	}

	args := []string{"--env", "NODE_ENV=production", "--env", "LOG_LEVEL=warn", "--region", "fra1"}
	if err := deployCmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	spec = deploySpecFromFlags(deployCmd, "vercel")
	if spec.Target != "vercel" {
		t.Errorf("target = %q", spec.Target)
	}
	if spec.ProjectName != "volt-app" {
		t.Errorf("project name = %q", spec.ProjectName)
	}
	if spec.Region != "fra1" {
		t.Errorf("region = %q", spec.Region)
	}
	if len(spec.Env) != 2 || spec.Env["NODE_ENV"] != "production" || spec.Env["LOG_LEVEL"] != "warn" {
		t.Errorf("env = %v, want the two KEY=VALUE pairs as a map", spec.Env)
	}
}
