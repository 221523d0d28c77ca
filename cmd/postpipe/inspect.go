package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		step    string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "inspect <result-set.yaml>",
		Short: "Load a result set and print its steps and wiring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(cmd.ErrOrStderr(), filters)
			if err != nil {
				return err
			}

			err = s.load(cmd.Context(), args[0])
			if err != nil {
				return errors.Wrapf(err, "unable to load %s", args[0])
			}

			if step != "" {
				err = s.pipe.SelectStepLabel(step)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			renderSteps(out, s.pipe)
			renderWiring(out, s.pipe)

			err = renderOutput(out, s)
			if err != nil {
				return err
			}

			return s.pipe.Close()
		},
	}

	cmd.Flags().StringVar(&step, "step", "", `step label to select, e.g. "1.0 s"`)
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter to append: warp:<field>:<factor> or extract:<field>")

	return cmd
}
