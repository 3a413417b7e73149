// Package envmgr talks to the virtual-environment manager.
//
// The manager (pyenv with the pyenv-virtualenv plugin) owns the registry of
// named environments. venvkit never keeps its own copy: every operation reads
// the registry fresh through the [Manager] interface, so the collision resolver
// and the reclaimer can be tested against [Memory] instead of a real pyenv.
//
// # Listing format
//
// `pyenv virtualenvs --bare` reports every environment twice: once by name
// ("myproj") and once as a version association ("3.12.8/envs/myproj").
// [FilterNames] keeps only the former; entries containing a path separator are
// never counted, displayed or deleted.
package envmgr
