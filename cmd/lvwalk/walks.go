package main

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvwalk/internal/edgelist"
	"github.com/katalvlaran/lvwalk/internal/profile"
	"github.com/katalvlaran/lvwalk/walk"
)

func newWalksCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walks",
		Short: "Generate random walks (uniform, restart or node2vec)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProfile(cmd, v)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			log := p.Logger(cmd.ErrOrStderr())

			g, err := loadGraphs(p, log, false)
			if err != nil {
				return err
			}

			start := time.Now()
			var (
				walks   *walk.Matrix
				weights *walk.WeightMatrix
			)
			if p.WeightsOutput != "" {
				walks, weights, err = walk.RandomWalksWithWeights(g.transition, nil, p.WalkOptions())
			} else {
				walks, err = walk.RandomWalks(g.transition, nil, p.WalkOptions())
			}
			if err != nil {
				return errors.Wrap(err, "generate walks")
			}
			log.Info().
				Int("rows", walks.Rows).
				Int("cols", walks.Cols).
				Float64("p", p.P).
				Float64("q", p.Q).
				Float64("alpha", p.Alpha).
				Dur("elapsed", time.Since(start)).
				Msg("Walks generated")

			if err := edgelist.WriteFile(p.Output, func(w io.Writer) error {
				return edgelist.WriteWalks(w, walks)
			}); err != nil {
				return err
			}
			if weights != nil {
				if err := edgelist.WriteFile(p.WeightsOutput, func(w io.Writer) error {
					return edgelist.WriteWeights(w, weights)
				}); err != nil {
					return err
				}
			}
			log.Debug().Str("output", p.Output).Str("weights_output", p.WeightsOutput).Msg("Results written")
			return nil
		},
	}
	addWalkFlags(cmd)
	cmd.Flags().String(profile.KeyWeightsOutput, "", "edge weights output (TSV), enables weighted walks")
	return cmd
}
