// Package report renders scheduling results as a title banner, a Gantt chart
// and a timing table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jar0582/CSCE4600/schedsim/scheduler"
)

var header = []string{"PID", "Burst Time", "Arrival Time", "Priority", "Waiting Time", "Turnaround Time"}

// cellWidth is the minimum width of one Gantt cell, borders excluded.
const cellWidth = 8

/* Write outputs a full report for one scheduling run given:
 an output writer
 the result of the run */
func Write(w io.Writer, res scheduler.Result) {
	Title(w, res)
	Gantt(w, res.Gantt)
	Schedule(w, res)
}

// Title prints the algorithm name, with its quantum when it has one, between two rules.
func Title(w io.Writer, res scheduler.Result) {
	name := res.Algorithm
	if res.Quantum > 0 {
		name = fmt.Sprintf("%s (quantum %d)", res.Algorithm, res.Quantum)
	}
	rule := strings.Repeat("=", len(name)+4)
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintf(w, "  %s\n", name)
	_, _ = fmt.Fprintln(w, rule)
}

// Gantt draws one cell per dispatch. Each start time sits under the left
// border of its cell and the final stop time under the last right border.
func Gantt(w io.Writer, gantt []scheduler.TimeSlice) {
	var bar, axis strings.Builder
	bar.WriteString("|")
	for _, slice := range gantt {
		label := fmt.Sprintf("P%d", slice.PID)
		width := max(cellWidth, len(label)+2)
		left := (width - len(label)) / 2
		bar.WriteString(strings.Repeat(" ", left) + label + strings.Repeat(" ", width-left-len(label)) + "|")

		start := fmt.Sprint(slice.Start)
		axis.WriteString(start + strings.Repeat(" ", max(1, width+1-len(start))))
	}
	if len(gantt) > 0 {
		axis.WriteString(fmt.Sprint(gantt[len(gantt)-1].Stop))
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintf(w, "%s\n\n", axis.String())
}

// Schedule renders the timing table with averages in the footer.
func Schedule(w io.Writer, res scheduler.Result) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.AppendBulk(rows(res.Processes))
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.AverageWait()),
		fmt.Sprintf("Average\n%.2f", res.AverageTurnaround())})
	table.SetCaption(true, fmt.Sprintf("Throughput %.2f/t", res.Throughput()))
	table.Render()
}

func rows(processes []scheduler.Process) [][]string {
	out := make([][]string, len(processes))
	for i, p := range processes {
		out[i] = []string{
			fmt.Sprint(p.PID),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
		}
	}
	return out
}
