package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/ptef"
	"github.com/randalmurphal/ptef/grammar"
)

// estimateFlags mirrors the duration and pause parameter fields so single
// values can be overridden without a parameter file.
type estimateFlags struct {
	n                  int64
	policy             string
	blockSize          int64
	mu                 float64
	sigma              float64
	speakerEffect      float64
	fatigueCoeff       float64
	weakPauseDuration  float64
	strongPauseDur     float64
	weakPauseProb      float64
	strongPauseProb    float64
	structuralPauseDur float64
	structuralProb     float64
	noStructural       bool
	ci                 bool
}

func newEstimateCmd() *cobra.Command {
	var ef estimateFlags

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate pronunciation time for the numbers 1..N",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, ef)
		},
	}

	cmd.Flags().Int64VarP(&ef.n, "n", "n", 0, "upper bound of the range 1..N")
	cmd.Flags().StringVar(&ef.policy, "policy", string(grammar.PolicyR1), "verbalization policy")
	cmd.Flags().Int64VarP(&ef.blockSize, "block-size", "b", 0, "token block size for structural pauses")
	cmd.Flags().Float64Var(&ef.mu, "mu", 0, "mean of log syllable duration")
	cmd.Flags().Float64Var(&ef.sigma, "sigma", 0, "standard deviation of log syllable duration")
	cmd.Flags().Float64Var(&ef.speakerEffect, "speaker-effect", 0, "speaker rate multiplier")
	cmd.Flags().Float64Var(&ef.fatigueCoeff, "fatigue-coeff", 0, "fatigue coefficient")
	cmd.Flags().Float64Var(&ef.weakPauseDuration, "weak-pause-duration", 0, "weak pause duration in seconds")
	cmd.Flags().Float64Var(&ef.strongPauseDur, "strong-pause-duration", 0, "strong pause duration in seconds")
	cmd.Flags().Float64Var(&ef.weakPauseProb, "weak-pause-prob", 0, "weak pause probability")
	cmd.Flags().Float64Var(&ef.strongPauseProb, "strong-pause-prob", 0, "strong pause probability")
	cmd.Flags().Float64Var(&ef.structuralPauseDur, "structural-pause-duration", 0, "structural pause duration in seconds")
	cmd.Flags().Float64Var(&ef.structuralProb, "structural-pause-prob", 0, "structural pause probability")
	cmd.Flags().BoolVar(&ef.noStructural, "no-structural-pauses", false, "disable block boundary pauses")
	cmd.Flags().BoolVar(&ef.ci, "ci", true, "include the 95% confidence interval")
	cmd.MarkFlagRequired("n")

	return cmd
}

func runEstimate(cmd *cobra.Command, ef estimateFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed

	if changed("policy") {
		cfg.Policy = grammar.Policy(ef.policy)
	}
	if changed("block-size") {
		cfg.BlockSize = ef.blockSize
	}
	if changed("mu") {
		cfg.Duration.Mu = ef.mu
	}
	if changed("sigma") {
		cfg.Duration.Sigma = ef.sigma
	}
	if changed("speaker-effect") {
		cfg.Duration.SpeakerEffect = ef.speakerEffect
	}
	if changed("fatigue-coeff") {
		cfg.Duration.FatigueCoeff = ef.fatigueCoeff
	}
	if changed("weak-pause-duration") {
		cfg.Pauses.WeakDuration = ef.weakPauseDuration
	}
	if changed("strong-pause-duration") {
		cfg.Pauses.StrongDuration = ef.strongPauseDur
	}
	if changed("weak-pause-prob") {
		cfg.Pauses.WeakProb = ef.weakPauseProb
	}
	if changed("strong-pause-prob") {
		cfg.Pauses.StrongProb = ef.strongPauseProb
	}
	if changed("structural-pause-duration") {
		cfg.Pauses.StructuralDuration = ef.structuralPauseDur
	}
	if changed("structural-pause-prob") {
		cfg.Pauses.StructuralProb = ef.structuralProb
	}
	if ef.noStructural {
		cfg.StructuralPauses = false
	}

	opts := []ptef.Option{
		ptef.WithPolicy(cfg.Policy),
		ptef.WithBlockSize(cfg.BlockSize),
		ptef.WithDurationParams(cfg.Duration),
		ptef.WithPauseParams(cfg.Pauses),
	}
	if !cfg.StructuralPauses {
		opts = append(opts, ptef.WithoutStructuralPauses())
	}
	if !ef.ci {
		opts = append(opts, ptef.WithoutCI())
	}

	slog.Debug("estimating", "n", ef.n, "policy", cfg.Policy, "block_size", cfg.BlockSize)

	result, err := ptef.Estimate(ef.n, opts...)
	if err != nil {
		return err
	}

	if flags.jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Estimation results for N=%d\n", ef.n)
	fmt.Printf("Policy: %s, Block size: %d\n", cfg.Policy, cfg.BlockSize)
	fmt.Printf("Expected duration: %.3f seconds\n", result.Mean)
	fmt.Printf("Variance: %.6f seconds²\n", result.Var)
	if result.CI95 != nil {
		fmt.Printf("95%% confidence interval: [%.3f, %.3f] seconds\n", result.CI95.Lower, result.CI95.Upper)
	}
	fmt.Println()
	fmt.Println("Details:")
	fmt.Printf("  Total syllables: %d\n", result.Details.TotalSyllables)
	fmt.Printf("  Syllable duration: %.3f seconds\n", result.Details.SyllableDuration)
	fmt.Printf("  Pause duration: %.3f seconds\n", result.Details.PauseDuration)
	fmt.Printf("  Pauses: weak=%d strong=%d structural=%d\n",
		result.Details.PauseCounts.Weak,
		result.Details.PauseCounts.Strong,
		result.Details.PauseCounts.Structural)
	return nil
}
