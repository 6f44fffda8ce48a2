package main

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvwalk/corrupt"
	"github.com/katalvlaran/lvwalk/internal/edgelist"
	"github.com/katalvlaran/lvwalk/walk"
)

func newCorruptCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corrupt",
		Short: "Generate walks, corrupt them with negative samples and label every transition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProfile(cmd, v)
			if err != nil {
				return err
			}
			if err := p.ValidateCorrupt(); err != nil {
				return err
			}
			log := p.Logger(cmd.ErrOrStderr())

			g, err := loadGraphs(p, log, true)
			if err != nil {
				return err
			}

			start := time.Now()
			walks, err := walk.RandomWalks(g.transition, nil, p.WalkOptions())
			if err != nil {
				return errors.Wrap(err, "generate walks")
			}
			log.Info().
				Int("rows", walks.Rows).
				Int("cols", walks.Cols).
				Dur("elapsed", time.Since(start)).
				Msg("Walks generated")

			start = time.Now()
			table, err := corrupt.NewDegreeTable(g.adjacency, p.NSExponent, p.TableSize)
			if err != nil {
				return errors.Wrap(err, "build negative-sampling table")
			}
			log.Debug().Int("cells", len(table)).Float64("exponent", p.NSExponent).Msg("Negative-sampling table built")

			opts := p.CorruptOptions()
			sim, err := corrupt.Corrupt(walks, g.adjacency, table, opts)
			if err != nil {
				return errors.Wrap(err, "corrupt walks")
			}
			log.Info().
				Int("corruptions", corrupt.NumCorruptions(walks.Rows, walks.Cols, opts.Rate)).
				Float64("rate", opts.Rate).
				Dur("elapsed", time.Since(start)).
				Msg("Walks corrupted")

			if err := edgelist.WriteFile(p.Output, func(w io.Writer) error {
				return edgelist.WriteWalks(w, walks)
			}); err != nil {
				return err
			}
			return edgelist.WriteFile(p.SimilarityOutput, func(w io.Writer) error {
				return edgelist.WriteSimilarity(w, sim)
			})
		},
	}
	addWalkFlags(cmd)
	addCorruptFlags(cmd)
	return cmd
}
