package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// envNameRegex matches names pyenv-virtualenv accepts without quoting trouble.
var envNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateEnvName validates a virtual environment name.
//
// The rules mirror what pyenv can store as a directory under versions/:
//   - No empty names
//   - No control characters or whitespace
//   - No path separators (a slash marks a version association, not an env)
//   - Maximum length of 128 characters
func ValidateEnvName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "environment name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "environment name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidName, "environment name contains whitespace or control characters")
		}
	}

	if strings.ContainsAny(name, `/\`) {
		return New(ErrCodeInvalidName, "environment name cannot contain path separators: %q", name)
	}

	if name == "system" {
		return New(ErrCodeInvalidName, "environment name %q is reserved by pyenv", name)
	}

	if !envNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid environment name: %q", name)
	}

	return nil
}

// pythonVersionRegex matches pyenv version tags such as 3.12.8, 3.13.0rc2,
// 3.13t or pypy3.10-7.3.17.
var pythonVersionRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._+-]*$`)

// ValidatePythonVersion validates an interpreter version tag.
func ValidatePythonVersion(version string) error {
	if version == "" {
		return New(ErrCodeInvalidVersion, "python version cannot be empty")
	}
	if len(version) > 64 {
		return New(ErrCodeInvalidVersion, "python version too long (max 64 characters)")
	}
	if strings.Contains(version, "..") || !pythonVersionRegex.MatchString(version) {
		return New(ErrCodeInvalidVersion, "invalid python version: %q", version)
	}
	return nil
}

// pythonPackageNameRegex matches valid Python package names (PEP 508).
var pythonPackageNameRegex = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)

// ValidatePythonPackageName validates a Python package name per PEP 508.
func ValidatePythonPackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	if !pythonPackageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPackage, "invalid Python package name: %q", name)
	}

	return nil
}

// ValidateDirectory rejects directory arguments that cannot be used as a
// project root.
func ValidateDirectory(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "directory cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "directory contains invalid characters")
		}
	}
	return nil
}
