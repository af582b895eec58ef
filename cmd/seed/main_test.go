package main

import (
	"errors"
	"testing"

	"evseed/internal/config"

	"github.com/rs/zerolog"
)

func TestExitCode(t *testing.T) {
	failure := errors.New("insert users[0]: unavailable")
	tests := []struct {
		name     string
		exitZero bool
		err      error
		want     int
	}{
		{name: "success", err: nil, want: 0},
		{name: "failure", err: failure, want: 1},
		{name: "failure with legacy exit status", exitZero: true, err: failure, want: 0},
		{name: "success with legacy exit status", exitZero: true, err: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{ExitZeroOnFailure: tt.exitZero}
			if got := exitCode(cfg, tt.err); got != tt.want {
				t.Fatalf("exitCode = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRunDryRun(t *testing.T) {
	cfg := &config.Config{GCPProjectID: "evcharging-aef0c", DryRun: true, TimeoutSec: 5}
	if code := run(cfg, zerolog.Nop()); code != 0 {
		t.Fatalf("dry run exit code = %d, want 0", code)
	}
}

func TestRunMissingFixtures(t *testing.T) {
	cfg := &config.Config{DryRun: true, FixturesFile: "does-not-exist.yaml"}
	if code := run(cfg, zerolog.Nop()); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	cfg.ExitZeroOnFailure = true
	if code := run(cfg, zerolog.Nop()); code != 0 {
		t.Fatalf("exit code with legacy status = %d, want 0", code)
	}
}

func TestRunMissingCredentials(t *testing.T) {
	cfg := &config.Config{GCPProjectID: "evcharging-aef0c", CredentialsFile: "does-not-exist.json", TimeoutSec: 5}
	if code := run(cfg, zerolog.Nop()); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
