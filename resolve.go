package aothost

import (
	"path"
)

// NodeResolver is the zero-config ModuleResolver used when a driver
// does not inject its own resolution. Relative specifiers probe source
// extensions against the containing directory, bare specifiers walk
// ancestor dependency directories. Probing goes through Context, so
// assumed-existing files resolve like real ones.
type NodeResolver struct{}

// NewNodeResolver returns the default module resolver.
func NewNodeResolver() *NodeResolver { return &NodeResolver{} }

func (NodeResolver) ResolveModule(moduleName, containingFile string, fc Context) (string, bool) {
	containingDir := path.Dir(normalizePath(containingFile))
	if isRelativeSpecifier(moduleName) {
		return probeModule(fc, path.Join(containingDir, moduleName))
	}
	for dir := containingDir; ; {
		if resolved, ok := probeModule(fc, dir+nodeModulesMarker+moduleName); ok {
			return resolved, true
		}
		parent := path.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// probeExtensions is the lookup order for extension probing. A source
// file wins over its own declaration file.
var probeExtensions = []string{".ts", ".d.ts", ".js", ".jsx", ".tsx"}

// probeModule tries the recognized source extensions against a
// candidate path, then an index file when the candidate is a directory.
func probeModule(fc Context, candidate string) (string, bool) {
	for _, ext := range probeExtensions {
		if filePath := candidate + ext; fc.FileExists(filePath) {
			return filePath, true
		}
	}
	if fc.DirectoryExists(candidate) {
		if filePath := candidate + "/index.ts"; fc.FileExists(filePath) {
			return filePath, true
		}
	}
	return "", false
}
