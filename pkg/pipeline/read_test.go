package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-postpipeline/pkg/dataset"
	"github.com/askiada/go-postpipeline/pkg/pipeline"
)

func TestCanRead(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		want bool
	}{
		"unstructured grid":  {path: "result.vtu", want: true},
		"upper case":         {path: "RESULT.VTK", want: true},
		"parallel grid":      {path: "/tmp/run/result.pvtu", want: true},
		"unknown extension":  {path: "result.frd"},
		"no extension":       {path: "result"},
		"extension in a dir": {path: "result.vtu/data"},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, pipeline.CanRead(tc.path))
		})
	}

	assert.True(t, pipeline.CanAccept(".vtp"))
	assert.True(t, pipeline.CanAccept("VTI"))
	assert.False(t, pipeline.CanAccept("yaml"))
}

func touchFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	return path
}

func TestRead(t *testing.T) {
	t.Parallel()

	leaf := dataset.NewLeaf([]dataset.Point{{1, 1, 1}}, nil)
	reader := pipeline.ReaderFunc(func(_ context.Context, path string) (dataset.Dataset, error) {
		if filepath.Base(path) == "broken.vtu" {
			return nil, assert.AnError
		}

		return leaf, nil
	})

	tcs := map[string]struct {
		path     string
		wantErr  error
		fileErr  bool
		wantLeaf bool
	}{
		"missing file": {
			path:    filepath.Join(t.TempDir(), "missing.vtu"),
			wantErr: pipeline.ErrFileAccess,
			fileErr: true,
		},
		"directory": {
			path:    t.TempDir(),
			wantErr: pipeline.ErrFileAccess,
			fileErr: true,
		},
		"unknown extension": {
			path:    touchFile(t, "result.frd"),
			wantErr: pipeline.ErrUnknownFormat,
		},
		"no reader": {
			path:    touchFile(t, "result.vtk"),
			wantErr: pipeline.ErrUnknownFormat,
		},
		"reader failure": {
			path:    touchFile(t, "broken.vtu"),
			wantErr: assert.AnError,
			fileErr: true,
		},
		"read": {
			path:     touchFile(t, "result.VTU"),
			wantLeaf: true,
		},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := newPipeline(t, pipeline.WithReader(".vtu", reader))

			err := p.Read(context.Background(), tc.path)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				var fileErr *pipeline.FileError
				assert.Equal(t, tc.fileErr, errors.As(err, &fileErr))

				return
			}

			require.NoError(t, err)

			if tc.wantLeaf {
				assert.Same(t, leaf, p.CurrentDataset())
			}
		})
	}
}
