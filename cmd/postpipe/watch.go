package main

import (
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-postpipeline/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "watch <result-set.yaml>",
		Short: "Reload a result set every time it changes",
		Long:  "watch loads a result set, then reloads it every time the file is written. The selected step is kept by label across reloads.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			s, err := a.newSession(cmd.ErrOrStderr(), filters)
			if err != nil {
				return err
			}

			w, err := watch.NewWatcher(args[0], a.cfg.Watch.Debounce)
			if err != nil {
				return err
			}

			defer w.Stop()

			err = w.Start()
			if err != nil {
				return err
			}

			reload := func() {
				err := s.load(ctx, args[0])
				if err != nil {
					// keep watching: the file may be written again
					s.logger.ErrorContext(ctx, "unable to load result set", "path", args[0], "error", err)

					return
				}

				out := cmd.OutOrStdout()
				renderSteps(out, s.pipe)

				err = renderOutput(out, s)
				if err != nil {
					s.logger.ErrorContext(ctx, "unable to compute output", "error", err)
				}
			}

			reload()

			for {
				select {
				case <-ctx.Done():
					return errors.Wrap(s.pipe.Close(), "unable to close pipeline")
				case _, ok := <-w.Changes:
					if !ok {
						return s.pipe.Close()
					}

					reload()
				}
			}
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter to append: warp:<field>:<factor> or extract:<field>")

	return cmd
}
