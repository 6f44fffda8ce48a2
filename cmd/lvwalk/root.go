package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvwalk/corrupt"
	"github.com/katalvlaran/lvwalk/internal/profile"
	"github.com/katalvlaran/lvwalk/walk"
)

// newRootCmd wires the command tree around a fresh viper instance.
func newRootCmd() *cobra.Command {
	v := profile.NewViper()
	root := &cobra.Command{
		Use:           "lvwalk",
		Short:         "Parallel random walks and negative sampling over sparse graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newWalksCmd(v), newCorruptCmd(v))
	return root
}

// addWalkFlags registers the graph and walk flags shared by both commands.
func addWalkFlags(cmd *cobra.Command) {
	def := walk.DefaultOptions()
	f := cmd.Flags()
	f.String(profile.KeyInput, "", "edge list: one \"u v [w]\" per line")
	f.Bool(profile.KeyDirected, false, "treat edges as directed")
	f.Float64(profile.KeySubSampling, 0, "column down-weighting exponent 1/(deg+1)^s, 0 disables")
	f.Bool(profile.KeyMaxEntropy, false, "use the maximal-entropy random walk transition matrix")
	f.Int(profile.KeyNWalks, def.NWalks, "walks per node")
	f.Int(profile.KeyWalkLen, def.WalkLen, "nodes per walk, including the start")
	f.Float64(profile.KeyP, def.P, "node2vec return parameter")
	f.Float64(profile.KeyQ, def.Q, "node2vec in-out parameter")
	f.Float64(profile.KeyAlpha, def.Alpha, "restart probability per step")
	f.Uint64(profile.KeySeed, 1, "random seed")
	f.Int(profile.KeyWorkers, 0, "worker goroutines, 0 uses GOMAXPROCS")
	f.String(profile.KeyOutput, "", "walks output (TSV)")
	f.BoolP(profile.KeyVerbose, "v", false, "debug logging")
}

// addCorruptFlags registers the negative-sampling flags.
func addCorruptFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64(profile.KeyRate, corrupt.DefaultRate, "fraction of walk cells to corrupt")
	f.Float64(profile.KeyNSExponent, corrupt.DefaultExponent, "degree exponent of the negative-sampling table")
	f.Int(profile.KeyTableSize, corrupt.DefaultTableSize, "negative-sampling table size")
	f.String(profile.KeySimilarityOutput, "", "similarity labels output (TSV)")
}

// loadProfile binds cmd's flags into v and resolves the profile.
func loadProfile(cmd *cobra.Command, v *viper.Viper) (*profile.Profile, error) {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return profile.FromViper(v), nil
}
