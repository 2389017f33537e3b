package aothost

import (
	"path"
	"strings"

	"go.uber.org/zap"
)

// ModuleResolver turns an import specifier and the file containing the
// import into an absolute file path. A false second result means no
// module matched; callers decide whether that is fatal.
type ModuleResolver interface {
	ResolveModule(moduleName, containingFile string, fc Context) (string, bool)
}

// ModuleResolverFunc adapts a function to the ModuleResolver interface.
type ModuleResolverFunc func(moduleName, containingFile string, fc Context) (string, bool)

func (f ModuleResolverFunc) ResolveModule(moduleName, containingFile string, fc Context) (string, bool) {
	return f(moduleName, containingFile, fc)
}

// pathResolver rewrites paths between the source tree rooted at
// basePath and the generated-output tree rooted at genDir.
type pathResolver struct {
	fc       Context
	resolver ModuleResolver
	basePath string
	genDir   string

	// genDirChild is true when genDir equals basePath or lies beneath
	// it, which selects the rewrite branch for ordinary source files.
	genDirChild bool
}

func newPathResolver(fc Context, resolver ModuleResolver, basePath, genDir string) *pathResolver {
	basePath = normalizePath(basePath)
	genDir = normalizePath(genDir)
	rel := relativePath(basePath, genDir)
	return &pathResolver{
		fc:          fc,
		resolver:    resolver,
		basePath:    basePath,
		genDir:      genDir,
		genDirChild: rel == "" || !strings.HasPrefix(rel, ".."),
	}
}

// moduleNameToFileName resolves an import specifier to an absolute file
// path, or "" when no module matches.
func (r *pathResolver) moduleNameToFileName(moduleName, containingFile string) (string, error) {
	if containingFile == "" {
		if isRelativeSpecifier(moduleName) {
			return "", &NoContainingFileError{ModuleName: moduleName}
		}
		// any file under the source root yields the same answer for
		// non-relative specifiers
		containingFile = path.Join(r.basePath, "index.ts")
	}
	resolved, ok := r.resolver.ResolveModule(stripExt(moduleName), containingFile, r.fc)
	if !ok {
		return "", nil
	}
	return resolved, nil
}

// fileNameToModuleName returns an import specifier for importedFile
// that is valid from the eventual on-disk location of containingFile,
// which conceptually lands under genDir at emit time.
func (r *pathResolver) fileNameToModuleName(importedFile, containingFile string) string {
	importedFile = normalizePath(importedFile)
	if !r.fc.FileExists(importedFile) {
		// forward reference to a file emitted later in this run
		Logger().Debug("assuming file exists", zap.String("path", importedFile))
		r.fc.AssumeFileExists(importedFile)
	}
	containingDir := path.Dir(r.rewriteGenDirPath(normalizePath(containingFile)))
	importedFile = stripExt(importedFile)

	importModule := dependencyModuleID(importedFile)
	switch generated := isGeneratedFile(importedFile); {
	case generated && importModule != "":
		// the generated artifact for a dependency lands under genDir,
		// mirroring the dependency layout
		return dotRelative(containingDir, path.Join(r.genDir, "node_modules", importModule))
	case generated:
		return dotRelative(containingDir, r.rewriteGenDirPath(importedFile))
	case importModule != "":
		// dependency imports stay bare so the module loader applies its
		// own lookup order instead of a filesystem-relative path
		return importModule
	default:
		if !r.genDirChild {
			// the two roots are assumed structurally mirrored; see the
			// limitation note on Host.FileNameToModuleName
			importedFile = r.rewriteGenDirPath(importedFile)
		}
		return dotRelative(containingDir, importedFile)
	}
}

// rewriteGenDirPath relocates a path that conceptually lives under
// basePath or a dependency directory into genDir. Paths under neither
// root pass through unchanged.
func (r *pathResolver) rewriteGenDirPath(filePath string) string {
	if idx := strings.LastIndex(filePath, nodeModulesMarker); idx != -1 {
		return path.Join(r.genDir, filePath[idx+1:])
	}
	if descendsFrom(filePath, r.basePath) {
		return r.genDir + strings.TrimPrefix(filePath, r.basePath)
	}
	return filePath
}
