package aothost

import (
	"path"
	"strings"
)

// nodeModulesMarker separates a dependency root from the module id of
// everything installed beneath it.
const nodeModulesMarker = "/node_modules/"

// knownExtensions are stripped from specifiers and file paths before
// resolution. Order matters: ".d.ts" must win over ".ts".
var knownExtensions = []string{".d.ts", ".ts", ".js", ".jsx", ".tsx"}

// generatedSuffixes mark compiler output by name alone, tested against
// the extension-stripped file name.
var generatedSuffixes = []string{".ngfactory", ".ngstyle", ".css.shim", ".css"}

// normalizePath canonicalizes a path to a forward-slash, cleaned,
// trailing-slash-free form. It is idempotent.
func normalizePath(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}

// stripExt removes a single recognized source extension, if any.
func stripExt(filePath string) string {
	for _, ext := range knownExtensions {
		if strings.HasSuffix(filePath, ext) {
			return strings.TrimSuffix(filePath, ext)
		}
	}
	return filePath
}

// isRelativeSpecifier reports whether a module specifier starts with a
// same- or parent-directory marker.
func isRelativeSpecifier(moduleName string) bool {
	return moduleName == "." || moduleName == ".." ||
		strings.HasPrefix(moduleName, "./") || strings.HasPrefix(moduleName, "../")
}

// isGeneratedFile classifies a path as compiler output purely by name
// pattern, without consulting the filesystem.
func isGeneratedFile(filePath string) bool {
	name := stripExt(filePath)
	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// isDeclarationFile reports whether a path names a declaration-only
// module.
func isDeclarationFile(filePath string) bool {
	return strings.HasSuffix(filePath, ".d.ts")
}

// dependencyModuleID returns the module id following the last
// dependency-directory marker, or "" for paths outside any dependency
// directory.
func dependencyModuleID(filePath string) string {
	idx := strings.LastIndex(filePath, nodeModulesMarker)
	if idx == -1 {
		return ""
	}
	return filePath[idx+len(nodeModulesMarker):]
}

// descendsFrom reports whether p equals root or lies beneath it. Both
// arguments must already be normalized.
func descendsFrom(p, root string) bool {
	return p == root || strings.HasPrefix(p, root+"/")
}

func splitSegments(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// relativePath computes the forward-slash path from directory from to
// target to. Equal inputs yield "".
func relativePath(from, to string) string {
	fromSegs := splitSegments(from)
	toSegs := splitSegments(to)
	common := 0
	for common < len(fromSegs) && common < len(toSegs) && fromSegs[common] == toSegs[common] {
		common++
	}
	segs := make([]string, 0, len(fromSegs)-common+len(toSegs)-common)
	for range fromSegs[common:] {
		segs = append(segs, "..")
	}
	segs = append(segs, toSegs[common:]...)
	return strings.Join(segs, "/")
}

// dotRelative formats the path from a directory to a target with an
// explicit relative marker: bare specifiers of the form "foo/bar" are
// reserved for dependency imports.
func dotRelative(from, to string) string {
	rel := relativePath(from, to)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}
