package scaffold

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultPythonVersion is used when neither a flag nor the config sets one.
const DefaultPythonVersion = "3.12.8"

// Context is everything the templates need.
type Context struct {
	Project       string // Display name (directory base name)
	Package       string // Importable package under src/
	EnvName       string // Environment pinned to the project
	PythonVersion string // Interpreter tag, e.g. 3.12.8
	Author        string // Optional "Name <email>"
}

// NewContext derives the package name from project.
func NewContext(project, envName, pythonVersion, author string) Context {
	if pythonVersion == "" {
		pythonVersion = DefaultPythonVersion
	}
	return Context{
		Project:       project,
		Package:       PackageName(project),
		EnvName:       envName,
		PythonVersion: pythonVersion,
		Author:        author,
	}
}

// PackageName turns a project name into a valid Python identifier: lowercase,
// anything outside [a-z0-9_] becomes '_', a leading digit gets a '_' prefix.
func PackageName(project string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(project) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "app"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

var majorMinorRE = regexp.MustCompile(`(\d+)\.(\d+)`)

// MajorMinor returns "3.12" for "3.12.8" (and for "pypy3.12-7.3.17").
func (c Context) MajorMinor() string {
	if m := majorMinorRE.FindStringSubmatch(c.PythonVersion); m != nil {
		return m[1] + "." + m[2]
	}
	return "3.12"
}

// TargetVersion returns the black/ruff target tag, e.g. "py312".
func (c Context) TargetVersion() string {
	return "py" + strings.ReplaceAll(c.MajorMinor(), ".", "")
}

// AuthorName splits "Name <email>" and returns Name.
func (c Context) AuthorName() string {
	name, _, _ := strings.Cut(c.Author, "<")
	return strings.TrimSpace(name)
}

// AuthorEmail splits "Name <email>" and returns email.
func (c Context) AuthorEmail() string {
	_, rest, ok := strings.Cut(c.Author, "<")
	if !ok {
		return ""
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), ">"))
}
