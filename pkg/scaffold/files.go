package scaffold

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/matzehuels/venvkit/pkg/errors"
)

// File is one rendered file, Path relative to the project root.
type File struct {
	Path    string
	Content string
	Mode    fs.FileMode
}

type renderer struct {
	path   func(Context) string
	mode   fs.FileMode
	render func(Context) (string, error)
}

func fixed(p string) func(Context) string { return func(Context) string { return p } }

func textTemplate(name, src string) func(Context) (string, error) {
	tmpl := template.Must(template.New(name).Option("missingkey=error").Parse(src))
	return func(c Context) (string, error) {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, c); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}

var renderers = []renderer{
	{fixed("pyproject.toml"), 0o644, RenderPyproject},
	{fixed("ruff.toml"), 0o644, RenderRuff},
	{fixed("mypy.ini"), 0o644, textTemplate("mypy", mypyTemplate)},
	{fixed(".pre-commit-config.yaml"), 0o644, RenderPreCommit},
	{fixed(".env.example"), 0o644, textTemplate("env", envTemplate)},
	{fixed(".gitignore"), 0o644, textTemplate("gitignore", gitignoreTemplate)},
	{fixed("README.md"), 0o644, textTemplate("readme", readmeTemplate)},
	{fixed("docs/index.md"), 0o644, textTemplate("docs", docsIndexTemplate)},
	{func(c Context) string { return filepath.Join("src", c.Package, "__init__.py") }, 0o644, textTemplate("init", initTemplate)},
	{func(c Context) string { return filepath.Join("src", c.Package, "main.py") }, 0o644, textTemplate("main", mainTemplate)},
	{fixed("tests/__init__.py"), 0o644, textTemplate("testinit", testInitTemplate)},
	{fixed("tests/test_main.py"), 0o644, textTemplate("testmain", testMainTemplate)},
	{fixed("scripts/setup.sh"), 0o755, textTemplate("setup", setupScriptTemplate)},
}

// Dirs returns the directories of the project layout.
func Dirs(c Context) []string {
	return []string{
		filepath.Join("src", c.Package),
		"tests",
		"docs",
		"scripts",
	}
}

// Files renders every template for c.
func Files(c Context) ([]File, error) {
	files := make([]File, 0, len(renderers))
	for _, r := range renderers {
		path := filepath.FromSlash(r.path(c))
		content, err := r.render(c)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", path)
		}
		files = append(files, File{Path: path, Content: content, Mode: r.mode})
	}
	return files, nil
}

// WriteReport lists what Write did, paths relative to the root.
type WriteReport struct {
	Dirs    []string
	Written []string
	Skipped []string
}

// Write creates dirs and files under root. Existing files are kept and
// reported as skipped.
func Write(root string, dirs []string, files []File) (*WriteReport, error) {
	report := &WriteReport{}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", root)
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return report, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", d)
		}
		report.Dirs = append(report.Dirs, d)
	}

	for _, f := range files {
		full := filepath.Join(root, f.Path)
		if _, err := os.Lstat(full); err == nil {
			report.Skipped = append(report.Skipped, f.Path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return report, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", filepath.Dir(f.Path))
		}
		mode := f.Mode
		if mode == 0 {
			mode = 0o644
		}
		if err := os.WriteFile(full, []byte(f.Content), mode); err != nil {
			return report, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", f.Path)
		}
		// WriteFile applies the umask; scripts must stay executable.
		if err := os.Chmod(full, mode); err != nil {
			return report, errors.Wrap(errors.ErrCodeInvalidPath, err, "chmod %s", f.Path)
		}
		report.Written = append(report.Written, f.Path)
	}
	return report, nil
}
