package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jar0582/CSCE4600/schedsim/scheduler"
)

/* region Loading processes. */

var (
	ErrInvalidArgs  = errors.New("invalid args")
	ErrInvalidInput = errors.New("invalid input")
)

// loadProcesses reads one process per CSV row: burst time, then an optional
// priority. PIDs follow row order starting at 1; every process arrives at 0.
func loadProcesses(r io.Reader) ([]scheduler.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidInput, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no processes in scheduling file", ErrInvalidInput)
	}

	processes := make([]scheduler.Process, len(rows))
	for i := range rows {
		if len(rows[i]) < 1 || len(rows[i]) > 2 {
			return nil, fmt.Errorf("%w: row %d: want burst[,priority], got %d fields", ErrInvalidInput, i+1, len(rows[i]))
		}
		burst, err := strToInt(rows[i][0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d burst time: %v", ErrInvalidInput, i+1, err)
		}
		processes[i] = scheduler.Process{PID: int64(i + 1), BurstTime: burst}
		if len(rows[i]) == 2 {
			if processes[i].Priority, err = strToInt(rows[i][1]); err != nil {
				return nil, fmt.Errorf("%w: row %d priority: %v", ErrInvalidInput, i+1, err)
			}
		}
		if burst <= 0 {
			return nil, fmt.Errorf("%w: row %d: burst time must be positive, got %d", ErrInvalidInput, i+1, burst)
		}
	}

	return processes, nil
}

func strToInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// promptProcesses asks for the batch on the terminal. The quantum prompt is
// skipped unless askQuantum is set, in which case the answer replaces quantum.
func promptProcesses(in io.Reader, out io.Writer, quantum int64, askQuantum bool) ([]scheduler.Process, int64, error) {
	r := bufio.NewReader(in)

	var count int
	_, _ = fmt.Fprint(out, "Enter the number of processes: ")
	if _, err := fmt.Fscan(r, &count); err != nil {
		return nil, 0, fmt.Errorf("%w: number of processes: %v", ErrInvalidInput, err)
	}
	if count <= 0 {
		return nil, 0, fmt.Errorf("%w: number of processes must be positive, got %d", ErrInvalidInput, count)
	}

	if askQuantum {
		_, _ = fmt.Fprint(out, "Enter time quantum for Round Robin scheduling: ")
		if _, err := fmt.Fscan(r, &quantum); err != nil {
			return nil, 0, fmt.Errorf("%w: time quantum: %v", ErrInvalidInput, err)
		}
	}

	processes := make([]scheduler.Process, count)
	for i := range processes {
		processes[i].PID = int64(i + 1)
		_, _ = fmt.Fprintf(out, "Enter burst time and priority for process %d: ", processes[i].PID)
		if _, err := fmt.Fscan(r, &processes[i].BurstTime, &processes[i].Priority); err != nil {
			return nil, 0, fmt.Errorf("%w: process %d: %v", ErrInvalidInput, processes[i].PID, err)
		}
		if processes[i].BurstTime <= 0 {
			return nil, 0, fmt.Errorf("%w: process %d: burst time must be positive, got %d", ErrInvalidInput, processes[i].PID, processes[i].BurstTime)
		}
	}
	_, _ = fmt.Fprintln(out)

	return processes, quantum, nil
}
