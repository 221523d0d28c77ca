package pipeline_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-postpipeline/pkg/dataset"
	"github.com/askiada/go-postpipeline/pkg/pipeline"
	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
	"github.com/askiada/go-postpipeline/pkg/property"
	"github.com/askiada/go-postpipeline/pkg/result"
	"github.com/askiada/go-postpipeline/pkg/units"
)

// recorder collects what fake nodes and hooks are asked to do, in order.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() { r.calls = nil }

type fakeNode struct {
	name   string
	rec    *recorder
	in     *fakeInput
	out    *fakeOutput
	step   float64
	events property.Signal[model.NodeEvent]
}

type fakeInput struct {
	node     *fakeNode
	upstream model.OutputPort
	reject   error
}

type fakeOutput struct {
	node *fakeNode
}

func newFakeNode(name string, rec *recorder) *fakeNode {
	n := &fakeNode{name: name, rec: rec}
	n.in = &fakeInput{node: n}
	n.out = &fakeOutput{node: n}

	return n
}

func (n *fakeNode) Name() string                   { return n.name }
func (n *fakeNode) ActiveInput() model.InputPort   { return n.in }
func (n *fakeNode) ActiveOutput() model.OutputPort { return n.out }
func (n *fakeNode) Touch()                         { n.rec.add("touch %s", n.name) }

func (n *fakeNode) SetStep(value float64) {
	n.step = value
	n.rec.add("step %s %v", n.name, value)
}

func (n *fakeNode) Subscribe(fn func(model.NodeEvent) error) func() {
	return n.events.Connect(fn)
}

func (n *fakeNode) emit(kind model.EventKind) error {
	return n.events.Emit(model.NodeEvent{Kind: kind, Node: n})
}

func (in *fakeInput) SetInputConnection(upstream model.OutputPort) error {
	if in.reject != nil {
		return in.reject
	}

	in.upstream = upstream
	in.node.rec.add("connect %s <- %s", in.node.name, upstream.Name())

	return nil
}

func (in *fakeInput) RemoveAllInputConnections() {
	in.upstream = nil
	in.node.rec.add("clear %s", in.node.name)
}

func (in *fakeInput) InputConnection() model.OutputPort { return in.upstream }

func (out *fakeOutput) Name() string { return out.node.name }

func (out *fakeOutput) Data() (*dataset.Leaf, error) {
	if out.node.in.upstream == nil {
		return nil, pipeline.ErrNoData
	}

	return out.node.in.upstream.Data()
}

// recordingHook is a pipeline option writing every call to a recorder.
type recordingHook struct {
	rec *recorder
}

func (h *recordingHook) New() error {
	h.rec.add("new")

	return nil
}

func (h *recordingHook) BeginRewire(source *model.NodeInfo) error {
	h.rec.add("begin %s", source.Name)

	return nil
}

func (h *recordingHook) PrepareFilter(upstream, filter *model.NodeInfo) error {
	h.rec.add("prepare %s -> %s", upstream.Name, filter.Name)

	return nil
}

func (h *recordingHook) OnStep(value float64) error {
	h.rec.add("on step %v", value)

	return nil
}

func (h *recordingHook) OnFilterOutput(upstream, filter *model.NodeInfo, _, _ time.Duration) error {
	h.rec.add("output %s -> %s", upstream.Name, filter.Name)

	return nil
}

func (h *recordingHook) Finish() error {
	h.rec.add("finish")

	return nil
}

func newPipeline(t *testing.T, opts ...pipeline.Option) *pipeline.Pipeline {
	t.Helper()

	p, err := pipeline.New("pipe", opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, p.Close())
	})

	return p
}

// stepResult returns a single point result, the point being placed at x.
func stepResult(x float64) *result.Result {
	return &result.Result{
		Mesh: &result.Mesh{Points: []dataset.Point{{x, 0, 0}}},
		Fields: []result.Field{
			{Name: "Temperature", Values: []float64{x * 10}},
		},
	}
}

func loadSteps(t *testing.T, p *pipeline.Pipeline, values ...float64) {
	t.Helper()

	results := make([]*result.Result, len(values))
	for i, v := range values {
		results[i] = stepResult(v)
	}

	require.NoError(t, p.LoadSteps(context.Background(), results, values, units.TimeSpan, "time"))
}

func timedLeaf(x, value float64) *dataset.Leaf {
	leaf := dataset.NewLeaf([]dataset.Point{{x, 0, 0}}, nil)
	leaf.FieldData().AddArray(dataset.NewFloatArray(dataset.TimeValueName, 1, value))

	return leaf
}
