package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jar0582/CSCE4600/schedsim/scheduler"
)

func TestWrite(t *testing.T) {
	res := scheduler.ShortestJobFirst([]scheduler.Process{
		{PID: 1, BurstTime: 10, Priority: 2},
		{PID: 2, BurstTime: 5, Priority: 1},
		{PID: 3, BurstTime: 8, Priority: 3},
	})

	var buf bytes.Buffer
	Write(&buf, res)
	out := buf.String()

	assert.Contains(t, out, scheduler.SJFAlgorithm)
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "|   P2   |   P3   |   P1   |")
	assert.Contains(t, out, "0        5        13       23")
	assert.Contains(t, out, "Waiting Time")
	assert.Contains(t, out, "Turnaround Time")
	assert.Contains(t, out, "6.00")
	assert.Contains(t, out, "13.67")
	assert.Contains(t, out, "Throughput 0.13/t")
}

func TestWriteRoundRobinTitle(t *testing.T) {
	res, err := scheduler.RoundRobin([]scheduler.Process{{PID: 1, BurstTime: 3}}, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, res)

	assert.Contains(t, buf.String(), "Round-robin (quantum 2)")
	assert.Contains(t, buf.String(), "|   P1   |   P1   |")
	assert.Contains(t, buf.String(), "0        2        3")
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, scheduler.Priority(nil))

	out := buf.String()
	assert.Contains(t, out, "PID")
	assert.Contains(t, out, "0.00")
}

func TestGanttWideLabel(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, []scheduler.TimeSlice{{PID: 1234567, Start: 0, Stop: 9}})

	assert.Equal(t, "Gantt schedule\n| P1234567 |\n0          9\n\n", buf.String())
}

func TestRows(t *testing.T) {
	got := rows([]scheduler.Process{
		{PID: 4, BurstTime: 6, Priority: 9, WaitingTime: 2, TurnaroundTime: 8},
	})
	assert.Equal(t, [][]string{{"4", "6", "0", "9", "2", "8"}}, got)
}
