package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AntonioJCosta/okgate/internal/core/domain/execution"
	"github.com/AntonioJCosta/okgate/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
)

// printSummary writes the verdict and a table of run details to w.
func printSummary(w io.Writer, result *execution.Result, pattern string) {
	fmt.Fprintln(w)
	if result.Matched {
		fmt.Fprintln(w, ui.SuccessColor("PASS: success marker found"))
	} else {
		fmt.Fprintln(w, ui.ErrorColor("FAIL: success marker not found"))
	}
	if result.ExitCode != 0 && result.Matched {
		fmt.Fprintln(w, ui.WarningColor(fmt.Sprintf("Note: the command itself exited %d; its exit code was ignored.", result.ExitCode)))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	table.Append([]string{"Run ID", ui.DetailColor(result.RunID)})
	table.Append([]string{"Command", result.CommandLine})
	table.Append([]string{"Shell", result.Shell})
	table.Append([]string{"Exit code", strconv.Itoa(result.ExitCode)})
	table.Append([]string{"Duration", result.Duration.String()})
	table.Append([]string{"Pattern", pattern})
	table.Append([]string{"Matched", strconv.FormatBool(result.Matched)})
	table.Render()
}
