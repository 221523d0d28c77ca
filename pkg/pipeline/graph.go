package pipeline

import (
	"log/slog"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-postpipeline/internal/store"
	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
)

// Connection is one link of the pipeline wiring.
type Connection struct {
	Upstream   string
	Downstream string
}

// graphManager connects the members of a pipeline to each other and to the source.
//
// Connections are always rebuilt from scratch: every member loses its upstream
// connection before being connected again. The wiring graph mirrors the ports so the
// topology can be inspected and drawn.
type graphManager struct {
	source *Source
	store  store.ConnectionStore[string, string]
	wiring graph.Graph[string, string]
	opts   []model.PipelineOption
	logger *slog.Logger
}

func newGraphManager(source *Source, opts []model.PipelineOption, logger *slog.Logger) *graphManager {
	s := store.NewMemoryStore[string, string]()

	return &graphManager{
		source: source,
		store:  s,
		wiring: graph.NewWithStore(graph.StringHash, s, graph.Directed(), graph.PreventCycles()),
		opts:   opts,
		logger: logger,
	}
}

// rewire connects nodes according to mode. The first failure aborts the remaining
// rewiring: members already handled keep their new connection.
func (m *graphManager) rewire(mode model.Mode, nodes []model.Node) error {
	if len(nodes) == 0 {
		return nil
	}

	m.logger.Debug("rewiring pipeline", "mode", mode.String(), "members", len(nodes))

	err := m.prune(nodes)
	if err != nil {
		return err
	}

	sourceInfo := model.SourceInfo(m.source.Name())
	for _, opt := range m.opts {
		err := opt.BeginRewire(sourceInfo)
		if err != nil {
			return errors.Wrap(err, "unable to run begin rewire function")
		}
	}

	var previous model.Node

	for _, node := range nodes {
		// prepare the node: make all connections new
		input := node.ActiveInput()
		input.RemoveAllInputConnections()
		m.store.RemoveInEdges(node.Name())

		var (
			upstream     model.OutputPort
			upstreamInfo *model.NodeInfo
		)

		switch mode {
		case model.Serial:
			// the next node gets the previous output, the first one gets the source
			if previous == nil {
				upstream, upstreamInfo = m.source, sourceInfo
			} else {
				upstream, upstreamInfo = previous.ActiveOutput(), model.FilterInfo(previous.Name())
			}
		case model.Parallel:
			upstream, upstreamInfo = m.source, sourceInfo
		default:
			return errors.Wrapf(ErrUnknownMode, "%s", mode)
		}

		err := input.SetInputConnection(upstream)
		if err != nil {
			return errors.Wrapf(err, "unable to connect %s to %s", node.Name(), upstreamInfo.Name)
		}

		err = m.link(upstreamInfo.Name, node.Name())
		if err != nil {
			return err
		}

		filterInfo := model.FilterInfo(node.Name())
		for _, opt := range m.opts {
			err := opt.PrepareFilter(upstreamInfo, filterInfo)
			if err != nil {
				return errors.Wrap(err, "unable to run prepare filter function")
			}
		}

		previous = node
	}

	return nil
}

// prune removes from the wiring graph the members that left the pipeline.
func (m *graphManager) prune(nodes []model.Node) error {
	current := make(map[string]struct{}, len(nodes)+1)
	current[m.source.Name()] = struct{}{}

	for _, node := range nodes {
		current[node.Name()] = struct{}{}
	}

	vertices, err := m.store.ListVertices()
	if err != nil {
		return errors.Wrap(err, "unable to list wiring vertices")
	}

	for _, vertex := range vertices {
		if _, ok := current[vertex]; ok {
			continue
		}

		m.store.Isolate(vertex)

		err := m.wiring.RemoveVertex(vertex)
		if err != nil {
			return errors.Wrapf(err, "unable to remove %s from wiring", vertex)
		}
	}

	return nil
}

func (m *graphManager) link(upstream, downstream string) error {
	for _, name := range []string{upstream, downstream} {
		err := m.wiring.AddVertex(name)
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return errors.Wrapf(err, "unable to add %s to wiring", name)
		}
	}

	err := m.wiring.AddEdge(upstream, downstream)
	if err != nil {
		return errors.Wrapf(err, "unable to link %s to %s", upstream, downstream)
	}

	return nil
}

// upstreamOf returns the name of the node feeding name, if any.
func (m *graphManager) upstreamOf(name string) (string, bool) {
	upstream := m.store.Upstream(name)
	if len(upstream) == 0 {
		return "", false
	}

	return upstream[0], true
}

// connections returns the wiring of nodes, in chain order.
func (m *graphManager) connections(nodes []model.Node) []Connection {
	res := make([]Connection, 0, len(nodes))

	for _, node := range nodes {
		for _, upstream := range m.store.Upstream(node.Name()) {
			res = append(res, Connection{Upstream: upstream, Downstream: node.Name()})
		}
	}

	return res
}
