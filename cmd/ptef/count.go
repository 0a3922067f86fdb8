package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/ptef/freq"
	"github.com/randalmurphal/ptef/grammar"
)

func newCountCmd() *cobra.Command {
	var (
		n      int64
		policy string
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the token frequency table for the numbers 1..N",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(n, grammar.Policy(policy))
		},
	}

	cmd.Flags().Int64VarP(&n, "n", "n", 0, "upper bound of the range 1..N")
	cmd.Flags().StringVar(&policy, "policy", string(grammar.PolicyR1), "verbalization policy")
	cmd.MarkFlagRequired("n")

	return cmd
}

func runCount(n int64, policy grammar.Policy) error {
	freqs, connectives, err := freq.CountRange(n, policy)
	if err != nil {
		return err
	}
	total := freqs.Total()

	if flags.jsonOut {
		out := struct {
			N           int64            `json:"n"`
			Policy      grammar.Policy   `json:"policy"`
			TotalTokens int64            `json:"total_tokens"`
			Connectives int64            `json:"connectives"`
			Frequencies freq.Frequencies `json:"frequencies"`
		}{n, policy, total, connectives, freqs}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	tokens := make([]string, 0, len(freqs))
	for token := range freqs {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if freqs[tokens[i]] != freqs[tokens[j]] {
			return freqs[tokens[i]] > freqs[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	fmt.Printf("Token frequencies for N=%d (%d tokens total, %d connectives)\n", n, total, connectives)
	for _, token := range tokens {
		fmt.Printf("  %-12s %d\n", token, freqs[token])
	}
	return nil
}
