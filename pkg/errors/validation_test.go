package errors

import (
	"strings"
	"testing"
)

func TestValidateEnvName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "myproject", false},
		{"with dash", "test-env-1", false},
		{"with dot", "proj.v2", false},
		{"generated", "env-a1b2c3d4", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"slash", "3.12.8/envs/foo", true},
		{"backslash", `foo\bar`, true},
		{"space", "my env", true},
		{"newline", "foo\nbar", true},
		{"leading dash", "-foo", true},
		{"reserved", "system", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEnvName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEnvName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateEnvName(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidatePythonVersion(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"3.12.8", false},
		{"3.13.0rc2", false},
		{"3.13t", false},
		{"pypy3.10-7.3.17", false},
		{"", true},
		{"3.12 8", true},
		{"../3.12", true},
		{"-3.12", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidatePythonVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePythonVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePythonPackageName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"requests", false},
		{"pytest-cov", false},
		{"zope.interface", false},
		{"a", false},
		{"", true},
		{"-bad", true},
		{"bad-", true},
		{"with space", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidatePythonPackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePythonPackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDirectory(t *testing.T) {
	if err := ValidateDirectory("."); err != nil {
		t.Errorf("ValidateDirectory(.) = %v", err)
	}
	if err := ValidateDirectory("  "); err == nil {
		t.Error("ValidateDirectory(blank) should fail")
	}
	if err := ValidateDirectory("a\x00b"); err == nil {
		t.Error("ValidateDirectory(nul) should fail")
	}
}
