// Package runner parses many Markdown files concurrently.
package runner

import "github.com/yaklabco/mdpara/pkg/config"

// Options controls file discovery and concurrency for one run.
type Options struct {
	// Paths are files or directories. Empty means the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors ignore globs. Empty
	// means the process working directory.
	WorkingDir string

	// Extensions are the lowercase, dot-prefixed suffixes parsed when
	// walking directories. Files named explicitly are always parsed.
	Extensions []string

	// ExcludeGlobs skip matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks walks into symlinked directories.
	FollowSymlinks bool

	// Jobs bounds the worker count; 0 or less means runtime.NumCPU().
	Jobs int
}

// OptionsFromConfig fills the discovery options from cfg.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	opts := Options{Paths: paths}
	if cfg != nil {
		opts.Extensions = cfg.Extensions
		opts.ExcludeGlobs = cfg.Ignore
		opts.Jobs = cfg.Jobs
	}
	return opts
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
