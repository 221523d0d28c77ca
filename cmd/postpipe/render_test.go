package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-postpipeline/pkg/dataset"
	"github.com/askiada/go-postpipeline/pkg/pipeline"
	"github.com/askiada/go-postpipeline/pkg/result"
)

func TestRenderOutputGroupsCounts(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New("render")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pipe.Close())
	})

	points := make([]dataset.Point, 1500)
	for i := range points {
		points[i] = dataset.Point{float64(i), 0, 0}
	}

	require.NoError(t, pipe.Load(context.Background(), &result.Result{Mesh: &result.Mesh{Points: points}}))

	var out bytes.Buffer
	require.NoError(t, renderOutput(&out, &session{pipe: pipe}))
	assert.Contains(t, out.String(), "1,500")
}
