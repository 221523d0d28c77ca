package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/askiada/go-postpipeline/pkg/dataset"
)

// Reader decodes the dataset stored in a file.
type Reader interface {
	Read(ctx context.Context, path string) (dataset.Dataset, error)
}

// ReaderFunc is a function implementing Reader.
type ReaderFunc func(ctx context.Context, path string) (dataset.Dataset, error)

// Read implements Reader.
func (f ReaderFunc) Read(ctx context.Context, path string) (dataset.Dataset, error) {
	return f(ctx, path)
}

var knownExtensions = map[string]struct{}{
	"vtk":  {},
	"vtp":  {},
	"vts":  {},
	"vtr":  {},
	"vti":  {},
	"vtu":  {},
	"pvtu": {},
}

// CanAccept reports whether ext is a dataset file extension. Case is ignored and a
// leading dot is allowed.
func CanAccept(ext string) bool {
	_, ok := knownExtensions[normalizeExt(ext)]

	return ok
}

// CanRead reports whether the extension of path is a dataset file extension.
func CanRead(path string) bool {
	return CanAccept(filepath.Ext(path))
}

// Read replaces the data of the pipeline with the content of the file at path.
func (p *Pipeline) Read(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Path: path, Err: errors.Wrap(ErrFileAccess, err.Error())}
	}

	info, err := f.Stat()
	f.Close()

	if err != nil || info.IsDir() {
		return &FileError{Path: path, Err: ErrFileAccess}
	}

	ext := normalizeExt(filepath.Ext(path))
	if !CanAccept(ext) {
		return errors.Wrapf(ErrUnknownFormat, "%s", path)
	}

	reader, ok := p.readers[ext]
	if !ok {
		return errors.Wrapf(ErrUnknownFormat, "no reader registered for %s", ext)
	}

	data, err := reader.Read(ctx, path)
	if err != nil {
		return &FileError{Path: path, Err: errors.Wrap(err, "unable to read dataset")}
	}

	return p.SetDataset(data)
}
