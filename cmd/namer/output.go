package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	cmn "github.com/RxnWeaver/iupac/common"
	"github.com/RxnWeaver/iupac/engine"
)

func conflictTypeName(t cmn.ConflictType) string {
	switch t {
	case cmn.ConflictDependency:
		return "dependency"
	case cmn.ConflictStateInconsistency:
		return "state_inconsistency"
	default:
		return "none"
	}
}

// textResult is the flattened shape printed for --output json when
// --trace is not set; it mirrors engine.NamingResult minus the request
// id, the locants and the trace. With --trace the full NamingResult is
// encoded instead.
type textResult struct {
	Name             string
	Method           string
	ParentStructure  string
	FunctionalGroups []string
	Confidence       float64
	Rules            []string
}

func printResult(cmd *cobra.Command, opts *rootOptions, result *engine.NamingResult) error {
	out := cmd.OutOrStdout()

	switch strings.ToLower(opts.output) {
	case "json":
		return printJSON(out, opts, result)
	default:
		return printText(out, opts, result)
	}
}

func printJSON(w io.Writer, opts *rootOptions, result *engine.NamingResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if opts.showTrace {
		return enc.Encode(result)
	}
	return enc.Encode(textResult{
		Name:             result.Name,
		Method:           result.Method,
		ParentStructure:  result.ParentStructure,
		FunctionalGroups: result.FunctionalGroups,
		Confidence:       result.Confidence,
		Rules:            result.Rules,
	})
}

func printText(w io.Writer, opts *rootOptions, result *engine.NamingResult) error {
	fmt.Fprintf(w, "%s\n", result.Name)
	fmt.Fprintf(w, "  method:     %s\n", result.Method)
	fmt.Fprintf(w, "  confidence: %.2f\n", result.Confidence)
	if result.ParentStructure != "" {
		fmt.Fprintf(w, "  parent:     %s\n", result.ParentStructure)
	}
	if len(result.FunctionalGroups) > 0 {
		fmt.Fprintf(w, "  groups:     %s\n", strings.Join(result.FunctionalGroups, ", "))
	}

	if !opts.showTrace {
		return nil
	}

	fmt.Fprintln(w, "  trace:")
	for _, e := range result.Trace {
		status := "ok"
		if e.Conflict != nil {
			status = fmt.Sprintf("conflict(%s): %s", conflictTypeName(e.Conflict.Type), e.Conflict.Message)
		}
		fmt.Fprintf(w, "    [%s] %s %s -- %s\n", e.Phase, e.RuleId, e.BlueBookRef, status)
	}
	return nil
}
