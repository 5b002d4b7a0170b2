package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAskCmd(v *viper.Viper) *cobra.Command {
	var (
		tripID string
		kv     []string
	)
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the travel assistant a question",
		Example: `  travelctl ask -u alice "北京五天怎么玩？"
  travelctl ask -u alice --trip 6650f1 -c budget=5000 "推荐酒店"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queryContext, err := parseContext(kv)
			if err != nil {
				return err
			}
			c, err := clientFrom(v)
			if err != nil {
				return err
			}
			a, err := c.Ask(cmd.Context(), strings.Join(args, " "), tripID, queryContext)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), v.GetString("output"), a, func(w io.Writer) error {
				return printAnswer(w, a)
			})
		},
	}
	cmd.Flags().StringVar(&tripID, "trip", "", "trip id to use as context")
	cmd.Flags().StringArrayVarP(&kv, "context", "c", nil, "extra context as key=value, repeatable")
	return cmd
}

func newHistoryCmd(v *viper.Viper) *cobra.Command {
	var tripID string
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"h"},
		Short:   "Show conversation history",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := clientFrom(v)
			if err != nil {
				return err
			}
			turns, err := c.History(cmd.Context(), tripID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), v.GetString("output"), turns, func(w io.Writer) error {
				return printTurns(w, turns)
			})
		},
	}
	cmd.Flags().StringVar(&tripID, "trip", "", "only turns recorded for this trip")
	return cmd
}

func newClearCmd(v *viper.Viper) *cobra.Command {
	var tripID string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete conversation history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := clientFrom(v)
			if err != nil {
				return err
			}
			n, err := c.Clear(cmd.Context(), tripID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), v.GetString("output"), map[string]int64{"deleted": n}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Deleted %d turns.\n", n)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&tripID, "trip", "", "only turns recorded for this trip")
	return cmd
}

func parseContext(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, val, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid context %q, want key=value", p)
		}
		out[strings.TrimSpace(k)] = val
	}
	return out, nil
}
