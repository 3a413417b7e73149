// Package naming picks the name of a new environment.
//
// A requested name that is free is used as-is. A taken name is replaced, once,
// by "env-" plus an 8 character [a-z0-9] suffix. The replacement is not checked
// against the registry again: a second collision is left to the manager, which
// refuses to create over an existing environment.
package naming

import (
	"context"
	"math/rand"
	"path/filepath"
	"slices"

	"github.com/matzehuels/venvkit/pkg/envmgr"
)

const (
	// FallbackPrefix starts every generated name.
	FallbackPrefix = "env-"

	// SuffixLen is the number of random characters after FallbackPrefix.
	SuffixLen = 8

	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// SuffixSource produces the random part of a fallback name.
type SuffixSource interface {
	Suffix() string
}

// RandomSuffix draws SuffixLen characters from [a-z0-9].
type RandomSuffix struct{}

// Suffix implements SuffixSource.
func (RandomSuffix) Suffix() string {
	b := make([]byte, SuffixLen)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// SequenceSuffix returns its values in order and repeats the last one.
type SequenceSuffix struct {
	Values []string
	next   int
}

// Suffix implements SuffixSource.
func (s *SequenceSuffix) Suffix() string {
	if len(s.Values) == 0 {
		return ""
	}
	v := s.Values[min(s.next, len(s.Values)-1)]
	s.next++
	return v
}

// Resolve returns requested when it is not in existing, otherwise a single
// generated fallback name.
func Resolve(requested string, existing []string, src SuffixSource) string {
	if !slices.Contains(existing, requested) {
		return requested
	}
	if src == nil {
		src = RandomSuffix{}
	}
	return FallbackPrefix + src.Suffix()
}

// Resolver applies Resolve to a fresh listing from the manager.
type Resolver struct {
	Manager envmgr.Manager
	Source  SuffixSource
}

// Resolve returns the name to create and whether requested was taken.
func (r *Resolver) Resolve(ctx context.Context, requested string) (string, bool, error) {
	existing, err := envmgr.Names(ctx, r.Manager)
	if err != nil {
		return "", false, err
	}
	name := Resolve(requested, existing, r.Source)
	return name, name != requested, nil
}

// DefaultName derives an environment name from the project directory.
func DefaultName(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return filepath.Base(abs), nil
}
