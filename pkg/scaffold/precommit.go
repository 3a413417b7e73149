package scaffold

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

type preCommitConfig struct {
	DefaultLanguageVersion map[string]string `yaml:"default_language_version,omitempty"`
	Repos                  []hookRepo        `yaml:"repos"`
}

type hookRepo struct {
	Repo  string `yaml:"repo"`
	Rev   string `yaml:"rev"`
	Hooks []hook `yaml:"hooks"`
}

type hook struct {
	ID                     string   `yaml:"id"`
	Args                   []string `yaml:"args,omitempty"`
	AdditionalDependencies []string `yaml:"additional_dependencies,omitempty"`
}

// PreCommitRepos are the hook repositories pinned in .pre-commit-config.yaml.
var PreCommitRepos = []hookRepo{
	{
		Repo: "https://github.com/pre-commit/pre-commit-hooks",
		Rev:  "v5.0.0",
		Hooks: []hook{
			{ID: "trailing-whitespace"},
			{ID: "end-of-file-fixer"},
			{ID: "check-yaml"},
			{ID: "check-toml"},
			{ID: "check-added-large-files"},
		},
	},
	{
		Repo:  "https://github.com/psf/black",
		Rev:   "24.10.0",
		Hooks: []hook{{ID: "black"}},
	},
	{
		Repo:  "https://github.com/astral-sh/ruff-pre-commit",
		Rev:   "v0.8.4",
		Hooks: []hook{{ID: "ruff", Args: []string{"--fix"}}},
	},
	{
		Repo:  "https://github.com/pre-commit/mirrors-mypy",
		Rev:   "v1.14.0",
		Hooks: []hook{{ID: "mypy", AdditionalDependencies: []string{"pytest"}}},
	},
}

// RenderPreCommit renders .pre-commit-config.yaml.
func RenderPreCommit(c Context) (string, error) {
	doc := preCommitConfig{
		DefaultLanguageVersion: map[string]string{"python": "python" + c.MajorMinor()},
		Repos:                  PreCommitRepos,
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
