// Package pkg provides the libraries behind the pyinit and pyclean commands.
//
// # Overview
//
// venvkit bootstraps and tears down local Python development environments on
// top of pyenv and its virtualenv plugin. The commands in cmd/ are thin; the
// behaviour lives here so it can be driven by an in-memory manager in tests.
//
// # Architecture
//
// Provisioning a project:
//
//	flags + config
//	      ↓
//	[provision] validate inputs, then run the steps in order
//	      ↓
//	[envmgr] interpreter + virtualenv   [naming] non-colliding name
//	      ↓
//	[scaffold] project tree   [vcs] git init + commit   [requirements] package list
//
// Reclaiming environments:
//
//	[envmgr] listing → [reclaim] target set → confirmation → batch delete
//
// # Quick Start
//
//	runner := command.NewExec(logger)
//	py := envmgr.NewPyenv("", runner)
//
//	p := &provision.Provisioner{
//	    Manager: py, Pinner: py, Executor: py, Toolchain: py,
//	    Runner: runner, Logger: logger,
//	}
//	res, err := p.Run(ctx, provision.Options{Directory: "myproject"})
//
//	plan, err := reclaim.NewPlan(ctx, py, reclaim.Options{Prefix: "test-env-"})
//	result := reclaim.DeleteAll(ctx, py, plan.Targets.Names)
//
// # Main Packages
//
// [envmgr] - The Manager interface over pyenv, the listing filter that drops
// "<version>/envs/<name>" associations, and an in-memory Manager for tests.
//
// [naming] - Single-shot collision resolution: a taken name becomes
// "env-" plus eight [a-z0-9] characters.
//
// [reclaim] - Mode selection, target-set resolution, selection parsing and
// best-effort batch deletion.
//
// [provision] - The provisioner's step runner.
//
// [scaffold] - Template context and renderers for pyproject.toml, ruff.toml,
// mypy.ini, .pre-commit-config.yaml and the src/ layout.
//
// [requirements] - requirements.txt parsing.
//
// [vcs] - Repository initialisation and the initial commit.
//
// [command] - The external process Runner and its test double.
//
// [observability] - Hooks for step and deletion events.
//
// [errors] - Coded errors and input validation.
//
// [buildinfo] - Version information injected at build time.
package pkg
