package terminal

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"stitcher.dev/launcher/internal/entity"
)

const TIME_LAYOUT = "2006-01-02 15:04:05"

// WriteLaunches renders the launches as a table, in the given order.
func WriteLaunches(output io.Writer, launches []entity.Launch) error {
	if len(launches) == 0 {
		_, err := fmt.Fprintln(output, "No launches recorded")
		return err
	}

	table := tablewriter.NewWriter(output)
	table.Header("Started", "Interpreter", "Source", "Entry point", "Status", "Exit code", "Duration")
	for _, launch := range launches {
		status := "failed"
		if launch.Succeeded() {
			status = "ok"
		}
		if err := table.Append([]string{
			launch.StartedAt.Local().Format(TIME_LAYOUT),
			launch.Interpreter,
			launch.Source,
			launch.EntryPoint,
			status,
			strconv.Itoa(launch.ExitCode),
			launch.Duration().Round(10 * time.Millisecond).String(),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
