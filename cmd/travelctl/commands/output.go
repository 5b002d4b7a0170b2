package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputText, "":
		return text(w)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func printAnswer(w io.Writer, a Answer) error {
	fmt.Fprintf(w, "[%s] %s\n", a.AgentUsed, a.Text)
	if a.Error != "" {
		fmt.Fprintf(w, "error: %s\n", a.Error)
	}
	if len(a.Options) > 0 {
		fmt.Fprintf(w, "(%d options, use -o yaml to list them)\n", len(a.Options))
	}
	return nil
}

func printTurns(w io.Writer, turns []Turn) error {
	if len(turns) == 0 {
		_, err := fmt.Fprintln(w, "No history.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tAGENT\tTRIP\tQUERY")
	for _, t := range turns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Timestamp, t.AgentUsed, dash(t.TripID), t.Query)
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
