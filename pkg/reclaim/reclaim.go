package reclaim

import (
	"context"
	"strings"

	"github.com/matzehuels/venvkit/pkg/envmgr"
	"github.com/matzehuels/venvkit/pkg/errors"
)

// Mode selects how the target set is computed.
type Mode int

const (
	ModeNone Mode = iota
	ModeList
	ModeAll
	ModePrefix
	ModeName
	ModeInteractive
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeAll:
		return "all"
	case ModePrefix:
		return "prefix"
	case ModeName:
		return "name"
	case ModeInteractive:
		return "interactive"
	default:
		return "none"
	}
}

// Deletes reports whether the mode removes environments.
func (m Mode) Deletes() bool {
	return m == ModeAll || m == ModePrefix || m == ModeName || m == ModeInteractive
}

// Options mirrors the reclaimer's flags.
type Options struct {
	List        bool
	All         bool
	Prefix      string
	Name        string
	Interactive bool
	Force       bool
}

// Mode returns the first requested mode, in the order list, all, prefix, name,
// interactive, together with its argument.
func (o Options) Mode() (Mode, string) {
	switch {
	case o.List:
		return ModeList, ""
	case o.All:
		return ModeAll, ""
	case o.Prefix != "":
		return ModePrefix, o.Prefix
	case o.Name != "":
		return ModeName, o.Name
	case o.Interactive:
		return ModeInteractive, ""
	default:
		return ModeNone, ""
	}
}

// Targets is a resolved target set.
type Targets struct {
	Names []string

	// NotFound holds the requested name when name mode matched nothing.
	NotFound string
}

// Empty reports whether there is nothing to act on.
func (t Targets) Empty() bool { return len(t.Names) == 0 }

// Resolve computes the target set for a non-interactive mode over a filtered,
// sorted listing. Interactive targets come from ParseSelection instead.
func Resolve(mode Mode, arg string, names []string) (Targets, error) {
	switch mode {
	case ModeList, ModeAll:
		return Targets{Names: append([]string(nil), names...)}, nil
	case ModePrefix:
		var matched []string
		for _, n := range names {
			if strings.HasPrefix(n, arg) {
				matched = append(matched, n)
			}
		}
		return Targets{Names: matched}, nil
	case ModeName:
		for _, n := range names {
			if n == arg {
				return Targets{Names: []string{n}}, nil
			}
		}
		return Targets{NotFound: arg}, nil
	case ModeInteractive:
		return Targets{}, errors.New(errors.ErrCodeInvalidInput, "interactive targets come from an operator selection")
	default:
		return Targets{}, errors.New(errors.ErrCodeInvalidInput, "no removal mode specified")
	}
}

// Plan is the listing and target set for one invocation.
type Plan struct {
	Mode    Mode
	Arg     string
	Names   []string // Filtered, sorted listing
	Targets Targets
}

// NewPlan lists the manager once and resolves the target set. For
// ModeInteractive the targets are left empty.
func NewPlan(ctx context.Context, m envmgr.Manager, opts Options) (*Plan, error) {
	mode, arg := opts.Mode()
	if mode == ModeNone {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no removal mode specified")
	}

	names, err := envmgr.Names(ctx, m)
	if err != nil {
		return nil, err
	}

	p := &Plan{Mode: mode, Arg: arg, Names: names}
	if mode == ModeInteractive {
		return p, nil
	}
	if p.Targets, err = Resolve(mode, arg, names); err != nil {
		return nil, err
	}
	return p, nil
}
