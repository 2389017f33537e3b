// Package aothost resolves module paths and loads module metadata for a
// compiler driver whose generated artifacts live in a separate output
// tree. It translates import specifiers to absolute file paths, absolute
// file paths back to specifiers valid from a generated file's eventual
// location, and loads or synthesizes per-module structural metadata.
package aothost

import (
	"context"
	"errors"
)

// Config configures a Host for one compilation run.
type Config struct {
	// BasePath is the root directory of authored sources. Required.
	BasePath string
	// GenDir is the root directory of the generated-output tree.
	// Required. It may, but does not have to, lie under BasePath.
	GenDir string

	// Context is the filesystem capability. Nil means disk-backed.
	Context Context
	// Resolver performs forward module resolution. Nil means the
	// node-style default.
	Resolver ModuleResolver

	// Program, Collector and Parse serve metadata lookups. A host
	// constructed without them still resolves paths.
	Program   Program
	Collector Collector
	Parse     ParseFunc
}

// Host composes path resolution and metadata loading behind the single
// contract the compiler driver consumes. A Host owns the mutable state
// of one compilation run (existence hints, metadata cache) and is not
// safe for concurrent use.
type Host struct {
	fc       Context
	resolver *pathResolver
	metadata *metadataStore
}

// New validates the configuration and builds a Host.
func New(cfg Config) (*Host, error) {
	if cfg.BasePath == "" {
		return nil, errors.New("aothost: BasePath is required")
	}
	if cfg.GenDir == "" {
		return nil, errors.New("aothost: GenDir is required")
	}
	fc := cfg.Context
	if fc == nil {
		fc = NewDiskContext()
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = NewNodeResolver()
	}
	return &Host{
		fc:       fc,
		resolver: newPathResolver(fc, resolver, cfg.BasePath, cfg.GenDir),
		metadata: newMetadataStore(fc, cfg.Program, cfg.Collector, cfg.Parse),
	}, nil
}

// ResolveModule resolves an import specifier from the given containing
// file to an absolute file path. It returns "" with a nil error when no
// module matches, and ErrNoContainingFile when a relative specifier is
// resolved without a containing file.
func (h *Host) ResolveModule(moduleName, containingFile string) (string, error) {
	return h.resolver.moduleNameToFileName(moduleName, containingFile)
}

// FileNameToModuleName returns an import specifier for importedFile
// usable from the generated-output location of containingFile. Files
// that do not exist yet are assumed to be emitted later in the run and
// become visible through Context.FileExists.
//
// When GenDir is not a descendant of BasePath, ordinary source imports
// rely on the two trees being structurally mirrored; layouts that do
// not line up produce specifiers pointing at nothing. This is a known
// limitation, not a verified remapping.
func (h *Host) FileNameToModuleName(importedFile, containingFile string) string {
	return h.resolver.fileNameToModuleName(importedFile, containingFile)
}

// MetadataFor returns the structural metadata for a module path, nil
// when the module carries none, or a fatal error for a source file
// missing from both the program and the filesystem or for a corrupt
// metadata sidecar. Results are memoized for the run.
func (h *Host) MetadataFor(filePath string) (Metadata, error) {
	return h.metadata.metadataFor(filePath)
}

// LoadResource returns the content of a resource file. It fails with
// ErrResourceNotFound when the target is absent.
func (h *Host) LoadResource(ctx context.Context, filePath string) (string, error) {
	return h.fc.ReadResource(ctx, filePath)
}
