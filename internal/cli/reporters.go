package cli

import (
	"github.com/AndreyAkinshin/specreport/internal/errors"
	"github.com/AndreyAkinshin/specreport/internal/reporter"
)

// cmdReporters lists the available reporters.
func cmdReporters(args []string) int {
	if wantsHelp(args) {
		out.HelpTitle("specreport reporters - list available reporters")
		out.HelpSection("Usage:")
		out.HelpUsage("specreport reporters")
		out.Println("")
		return 0
	}
	if len(args) > 0 {
		out.ErrorPrefix("reporters: unexpected argument: %s", args[0])
		return errors.ExitConfigError
	}

	var rows [][]string
	for _, typ := range reporter.Types() {
		rows = append(rows, []string{typ.String(), typ.Description()})
	}
	out.Table([]string{"NAME", "DESCRIPTION"}, rows)
	return 0
}
