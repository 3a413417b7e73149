package scaffold

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

type pyproject struct {
	BuildSystem buildSystem   `toml:"build-system"`
	Project     projectTable  `toml:"project"`
	Tool        pyprojectTool `toml:"tool"`
}

type buildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

type projectTable struct {
	Name                 string              `toml:"name"`
	Version              string              `toml:"version"`
	Description          string              `toml:"description"`
	Readme               string              `toml:"readme"`
	RequiresPython       string              `toml:"requires-python"`
	Dependencies         []string            `toml:"dependencies"`
	Authors              []author            `toml:"authors,omitempty"`
	OptionalDependencies map[string][]string `toml:"optional-dependencies"`
}

type author struct {
	Name  string `toml:"name"`
	Email string `toml:"email,omitempty"`
}

type pyprojectTool struct {
	Setuptools setuptoolsTool `toml:"setuptools"`
	Black      blackTool      `toml:"black"`
	Pytest     pytestTool     `toml:"pytest"`
	Coverage   coverageTool   `toml:"coverage"`
}

type setuptoolsTool struct {
	Packages struct {
		Find struct {
			Where []string `toml:"where"`
		} `toml:"find"`
	} `toml:"packages"`
}

type blackTool struct {
	LineLength    int      `toml:"line-length"`
	TargetVersion []string `toml:"target-version"`
}

type pytestTool struct {
	IniOptions struct {
		Testpaths  []string `toml:"testpaths"`
		Pythonpath []string `toml:"pythonpath"`
		Addopts    string   `toml:"addopts"`
	} `toml:"ini_options"`
}

type coverageTool struct {
	Run struct {
		Source []string `toml:"source"`
		Branch bool     `toml:"branch"`
	} `toml:"run"`
}

// DevDependencies is the optional "dev" extra written to pyproject.toml and
// the baseline toolset installed when no requirements file is given.
var DevDependencies = []string{"black", "ruff", "mypy", "pytest", "pytest-cov", "pre-commit"}

// LineLength is shared by black and ruff.
const LineLength = 88

// RenderPyproject renders pyproject.toml: package metadata plus black, pytest
// and coverage settings.
func RenderPyproject(c Context) (string, error) {
	doc := pyproject{
		BuildSystem: buildSystem{
			Requires:     []string{"setuptools>=68", "wheel"},
			BuildBackend: "setuptools.build_meta",
		},
		Project: projectTable{
			Name:                 c.Project,
			Version:              "0.1.0",
			Description:          "",
			Readme:               "README.md",
			RequiresPython:       ">=" + c.MajorMinor(),
			Dependencies:         []string{},
			OptionalDependencies: map[string][]string{"dev": DevDependencies},
		},
	}
	if name := c.AuthorName(); name != "" {
		doc.Project.Authors = []author{{Name: name, Email: c.AuthorEmail()}}
	}

	doc.Tool.Setuptools.Packages.Find.Where = []string{"src"}
	doc.Tool.Black = blackTool{LineLength: LineLength, TargetVersion: []string{c.TargetVersion()}}
	doc.Tool.Pytest.IniOptions.Testpaths = []string{"tests"}
	doc.Tool.Pytest.IniOptions.Pythonpath = []string{"src"}
	doc.Tool.Pytest.IniOptions.Addopts = "-ra --strict-markers"
	doc.Tool.Coverage.Run.Source = []string{c.Package}
	doc.Tool.Coverage.Run.Branch = true

	return encodeTOML(doc)
}

type ruffConfig struct {
	LineLength    int        `toml:"line-length"`
	TargetVersion string     `toml:"target-version"`
	Src           []string   `toml:"src"`
	Lint          ruffLint   `toml:"lint"`
	Format        ruffFormat `toml:"format"`
}

type ruffLint struct {
	Select         []string            `toml:"select"`
	Ignore         []string            `toml:"ignore"`
	PerFileIgnores map[string][]string `toml:"per-file-ignores"`
}

type ruffFormat struct {
	QuoteStyle string `toml:"quote-style"`
}

// RenderRuff renders ruff.toml, the linter configuration.
func RenderRuff(c Context) (string, error) {
	return encodeTOML(ruffConfig{
		LineLength:    LineLength,
		TargetVersion: c.TargetVersion(),
		Src:           []string{"src", "tests"},
		Lint: ruffLint{
			Select: []string{"E", "F", "W", "I", "N", "UP", "B", "S", "SIM"},
			Ignore: []string{"E501"},
			PerFileIgnores: map[string][]string{
				"tests/*": {"S101"},
			},
		},
		Format: ruffFormat{QuoteStyle: "double"},
	})
}

func encodeTOML(v any) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
