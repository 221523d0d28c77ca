package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/askiada/go-postpipeline/pkg/pipeline"
)

func renderSteps(w io.Writer, p *pipeline.Pipeline) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s steps (%s, %s)", p.StepType(), p.StepUnit(), p.Mode()))
	t.AppendHeader(table.Row{"#", "Value", "Label", "Selected"})

	values := p.StepValues()
	for i, label := range p.StepLabels() {
		value := "-"
		if i < len(values) {
			value = fmt.Sprint(values[i])
		}

		selected := ""
		if i == p.CurrentStep() {
			selected = "*"
		}

		t.AppendRow(table.Row{i, value, label, selected})
	}

	t.Render()
}

func renderWiring(w io.Writer, p *pipeline.Pipeline) {
	connections := p.Connections()
	if len(connections) == 0 {
		_, _ = fmt.Fprintln(w, "(no filter)")

		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Upstream", "Downstream"})

	for _, c := range connections {
		t.AppendRow(table.Row{c.Upstream, c.Downstream})
	}

	t.Render()
}

func renderOutput(w io.Writer, s *session) error {
	data, err := s.pipe.Recompute()
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("output at " + s.pipe.CurrentStepLabel())
	t.AppendHeader(table.Row{"Points", "Cells", "Point fields"})
	t.AppendRow(table.Row{
		humanize.Comma(int64(data.NumberOfPoints())),
		humanize.Comma(int64(len(data.Cells()))),
		fmt.Sprint(data.PointData().Names()),
	})
	t.Render()

	return nil
}
