package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/ptef/grammar"
)

func newWordsCmd() *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:   "words <number>...",
		Short: "Verbalize integers as Brazilian Portuguese words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWords(args, grammar.Policy(policy))
		},
	}

	cmd.Flags().StringVar(&policy, "policy", string(grammar.PolicyR1), "verbalization policy")

	return cmd
}

func runWords(args []string, policy grammar.Policy) error {
	type entry struct {
		N      int64    `json:"n"`
		Tokens []string `json:"tokens"`
		Text   string   `json:"text"`
	}

	entries := make([]entry, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", arg, err)
		}
		tokens, err := grammar.Verbalize(n, policy)
		if err != nil {
			return err
		}
		entries = append(entries, entry{n, tokens, strings.Join(tokens, " ")})
	}

	if flags.jsonOut {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%d: %s\n", e.N, e.Text)
	}
	return nil
}
