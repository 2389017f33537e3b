package aothost

import (
	"context"

	"github.com/pkg/errors"
	"github.com/viant/afs"
)

// Context is the filesystem capability consumed by the host. FileExists
// must honor forward-existence hints recorded via AssumeFileExists
// before consulting the backing store, so that files scheduled for
// emission later in the same run already resolve.
type Context interface {
	// FileExists reports whether a file exists or has been assumed to
	// exist for the remainder of the run.
	FileExists(filePath string) bool

	// DirectoryExists reports whether a directory exists.
	DirectoryExists(dirPath string) bool

	// ReadFile returns the text of an existing file.
	ReadFile(filePath string) (string, error)

	// ReadResource returns the content of a resource file. It fails
	// with ErrResourceNotFound when the target is absent, checked
	// before the read.
	ReadResource(ctx context.Context, filePath string) (string, error)

	// AssumeFileExists records a forward-existence hint for a file not
	// yet written. Hints are never cleared during a run.
	AssumeFileExists(filePath string)
}

// diskContext backs Context with real storage.
type diskContext struct {
	fs      afs.Service
	assumed map[string]bool
}

// NewDiskContext returns a Context reading from the local filesystem.
func NewDiskContext() Context {
	return &diskContext{fs: afs.New(), assumed: make(map[string]bool)}
}

func (c *diskContext) FileExists(filePath string) bool {
	if c.assumed[filePath] {
		return true
	}
	ok, _ := c.fs.Exists(context.Background(), filePath)
	return ok
}

func (c *diskContext) DirectoryExists(dirPath string) bool {
	object, err := c.fs.Object(context.Background(), dirPath)
	return err == nil && object.IsDir()
}

func (c *diskContext) ReadFile(filePath string) (string, error) {
	data, err := c.fs.DownloadWithURL(context.Background(), filePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %v", filePath)
	}
	return string(data), nil
}

func (c *diskContext) ReadResource(ctx context.Context, filePath string) (string, error) {
	if !c.FileExists(filePath) {
		return "", &ResourceNotFoundError{Path: filePath}
	}
	data, err := c.fs.DownloadWithURL(ctx, filePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to load resource %v", filePath)
	}
	return string(data), nil
}

func (c *diskContext) AssumeFileExists(filePath string) {
	c.assumed[filePath] = true
}
