package aothost

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Metadata is the structural description of a module's exported
// declarations. Its schema belongs to the collector and the sidecar
// files; this package only distinguishes presence from absence.
type Metadata any

// SourceFile is the parsed representation of a module, produced by the
// driver's parser. Opaque to this package beyond its file name.
type SourceFile interface {
	FileName() string
}

// Program exposes the parsed source files of the active compilation.
type Program interface {
	// SourceFile returns the parsed file for a path, if the path is
	// part of the program closure.
	SourceFile(filePath string) (SourceFile, bool)
}

// Collector extracts structural metadata from a parsed source file.
type Collector interface {
	ModuleMetadata(file SourceFile) (Metadata, error)
}

// ParseFunc parses the text of a source file referenced outside the
// active program closure.
type ParseFunc func(filePath, text string) (SourceFile, error)

// metadataStore loads or synthesizes per-module metadata with a
// path-keyed memoization cache. A single run never sees a file change
// underneath it, so entries are never invalidated.
type metadataStore struct {
	fc        Context
	program   Program
	collector Collector
	parse     ParseFunc
	cache     map[string]Metadata
}

func newMetadataStore(fc Context, program Program, collector Collector, parse ParseFunc) *metadataStore {
	return &metadataStore{
		fc:        fc,
		program:   program,
		collector: collector,
		parse:     parse,
		cache:     make(map[string]Metadata),
	}
}

// metadataFor returns metadata for a module path, nil when the module
// carries none, or a fatal error. Absence is cached like any result.
func (s *metadataStore) metadataFor(filePath string) (Metadata, error) {
	if m, ok := s.cache[filePath]; ok {
		return m, nil
	}
	m, err := s.loadMetadata(filePath)
	if err != nil {
		return nil, err
	}
	s.cache[filePath] = m
	return m, nil
}

func (s *metadataStore) loadMetadata(filePath string) (Metadata, error) {
	if !s.fc.FileExists(filePath) {
		// a hand-written ambient declaration may never be physically
		// present
		return nil, nil
	}
	if isDeclarationFile(filePath) {
		sidecar := strings.TrimSuffix(filePath, ".d.ts") + ".metadata.json"
		if !s.fc.FileExists(sidecar) {
			return nil, nil
		}
		return s.readSidecar(sidecar)
	}
	if s.program != nil {
		if file, ok := s.program.SourceFile(filePath); ok {
			return s.collect(file)
		}
	}
	// referenced outside the program closure; the file must be readable
	// from disk, an assumed-existing hint is not enough
	text, err := s.fc.ReadFile(filePath)
	if err != nil {
		return nil, &SourceNotInProgramError{Path: filePath}
	}
	if s.parse == nil {
		return nil, errors.Errorf("aothost: no parser configured for out-of-program file %v", filePath)
	}
	file, err := s.parse(filePath, text)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %v", filePath)
	}
	return s.collect(file)
}

func (s *metadataStore) collect(file SourceFile) (Metadata, error) {
	if s.collector == nil {
		return nil, errors.Errorf("aothost: no metadata collector configured for %v", file.FileName())
	}
	return s.collector.ModuleMetadata(file)
}

// readSidecar parses a .metadata.json file. An empty array reads the
// same as a missing sidecar; corrupt JSON is logged and re-raised, it
// indicates a build-pipeline defect rather than absent metadata.
func (s *metadataStore) readSidecar(filePath string) (Metadata, error) {
	text, err := s.fc.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		Logger().Error("failed to read metadata", zap.String("path", filePath), zap.Error(err))
		return nil, errors.Wrapf(err, "corrupt metadata %v", filePath)
	}
	if list, ok := parsed.([]any); ok && len(list) == 0 {
		return nil, nil
	}
	return parsed, nil
}
