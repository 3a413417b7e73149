// Package scaffold renders and writes the project skeleton.
//
// Rendering is pure: every generated file is a function of a [Context] and
// returns its content as a string, so the output can be checked without
// touching the filesystem. [Write] is the only part that does I/O, and it never
// overwrites a file that already exists.
//
// Structured configuration is produced by encoders rather than text:
// pyproject.toml and ruff.toml go through BurntSushi/toml, and
// .pre-commit-config.yaml through gopkg.in/yaml.v3. The remaining files are
// text/template sources kept in templates.go.
package scaffold
