// Package requirements reads pip requirements files.
//
// Only enough is understood to report what an install will pull in and to
// reject files that are obviously not requirements files; pip itself does the
// real resolution.
package requirements

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/matzehuels/venvkit/pkg/errors"
)

var depNameRE = regexp.MustCompile(`^([a-zA-Z0-9][-a-zA-Z0-9._]*)`)

// File is a parsed requirements file.
type File struct {
	Path     string
	Packages []string // Normalized names, first occurrence order
	Options  []string // Lines starting with '-' (-r, -e, --index-url, ...)
	Direct   []string // URL and VCS references
}

// Load opens and parses a requirements file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "requirements file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open requirements file %s", path)
	}
	defer f.Close()

	rf, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read requirements file %s", path)
	}
	rf.Path = path
	return rf, nil
}

// Parse reads requirement lines from r.
func Parse(r io.Reader) (*File, error) {
	seen := make(map[string]bool)
	rf := &File{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '-' {
			rf.Options = append(rf.Options, line)
			continue
		}
		if strings.Contains(line, "://") || strings.HasPrefix(line, "git+") {
			rf.Direct = append(rf.Direct, line)
			continue
		}
		m := depNameRE.FindStringSubmatch(line)
		if len(m) < 2 {
			continue
		}
		name := Normalize(m[1])
		if err := errors.ValidatePythonPackageName(name); err != nil {
			return nil, err
		}
		if !seen[name] {
			seen[name] = true
			rf.Packages = append(rf.Packages, name)
		}
	}

	return rf, scanner.Err()
}

// Count is the number of distinct entries pip will be asked for.
func (f *File) Count() int {
	return len(f.Packages) + len(f.Direct)
}

// Normalize applies PEP 503 name normalization.
func Normalize(name string) string {
	name = strings.ToLower(name)
	return strings.NewReplacer("_", "-", ".", "-").Replace(name)
}

func stripComment(line string) string {
	if i := strings.Index(line, " #"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "#") {
		return ""
	}
	return line
}
