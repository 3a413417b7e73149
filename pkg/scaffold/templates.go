package scaffold

const mypyTemplate = `[mypy]
python_version = {{.MajorMinor}}
mypy_path = src
files = src, tests
strict = True
warn_unused_configs = True
show_error_codes = True

[mypy-tests.*]
disallow_untyped_defs = False
`

const envTemplate = `# Environment variables for {{.Project}}.
# Copy to .env and fill in real values; .env is ignored by git.
APP_NAME={{.Package}}
APP_ENV=development
LOG_LEVEL=INFO
DEBUG=false
# DATABASE_URL=
# API_KEY=
`

const gitignoreTemplate = `# Byte-compiled / cache
__pycache__/
*.py[cod]
.mypy_cache/
.ruff_cache/
.pytest_cache/

# Packaging
build/
dist/
*.egg-info/

# Coverage
.coverage
.coverage.*
htmlcov/

# Environments
.env
.venv/

# Editors
.idea/
.vscode/
.DS_Store
`

const readmeTemplate = `# {{.Project}}

## Setup

The project is pinned to the pyenv virtualenv ` + "`{{.EnvName}}`" + ` (Python {{.PythonVersion}}).
Entering the directory activates it automatically through ` + "`.python-version`" + `.

` + "```bash" + `
./scripts/setup.sh
` + "```" + `

## Development

` + "```bash" + `
pytest                 # tests with coverage settings from pyproject.toml
ruff check .           # lint
black .                # format
mypy                   # type check
pre-commit run --all   # every hook
` + "```" + `

## Layout

- ` + "`src/{{.Package}}/`" + `: package source
- ` + "`tests/`" + `: test suite
- ` + "`docs/`" + `: documentation
- ` + "`scripts/`" + `: helper scripts
`

const docsIndexTemplate = `# {{.Project}} documentation

Start here. Add one page per topic next to this file.
`

const initTemplate = `"""{{.Project}}."""

__version__ = "0.1.0"
`

const mainTemplate = `"""Command-line entry point for {{.Project}}."""


def greeting() -> str:
    return "Hello from {{.Project}}!"


def main() -> None:
    print(greeting())


if __name__ == "__main__":
    main()
`

const testInitTemplate = ``

const testMainTemplate = `import pytest

from {{.Package}}.main import greeting, main


def test_greeting() -> None:
    assert "{{.Project}}" in greeting()


def test_main_prints(capsys: pytest.CaptureFixture[str]) -> None:
    main()
    assert capsys.readouterr().out.strip() == greeting()
`

const setupScriptTemplate = `#!/usr/bin/env bash
# Reinstall {{.Project}} into the {{.EnvName}} environment.
set -euo pipefail

cd "$(dirname "$0")/.."

export PYENV_VERSION="{{.EnvName}}"
pyenv exec pip install --upgrade pip
if [ -f requirements.txt ]; then
    pyenv exec pip install -r requirements.txt
fi
pyenv exec pip install -e ".[dev]"
pyenv exec pre-commit install
`
