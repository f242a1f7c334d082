package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jar0582/CSCE4600/schedsim/config"
	"github.com/jar0582/CSCE4600/schedsim/report"
	"github.com/jar0582/CSCE4600/schedsim/scheduler"
)

func main() {
	/* CLI args and config file */
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	/* Load processes, from a CSV file when one is given, otherwise from the terminal */
	processes, quantum, err := readProcesses(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	/* Scheduling */
	if err := run(os.Stdout, cfg.Algorithms, processes, quantum); err != nil {
		log.Fatal(err)
	}
}

func readProcesses(cfg *config.SchedulerConfig, in io.Reader, out io.Writer) ([]scheduler.Process, int64, error) {
	if len(cfg.Args) == 0 {
		return promptProcesses(in, out, cfg.TimeQuantum, cfg.NeedsQuantum())
	}

	f, closeFile, err := openProcessingFile(cfg.Args...)
	if err != nil {
		return nil, 0, err
	}
	defer closeFile()

	processes, err := loadProcesses(f)
	if err != nil {
		return nil, 0, err
	}
	return processes, cfg.TimeQuantum, nil
}

// run schedules the batch with every algorithm in turn. Each algorithm gets the
// original batch, not the output of the previous one.
func run(w io.Writer, algorithms []string, processes []scheduler.Process, quantum int64) error {
	if quantum <= 0 {
		for _, algorithm := range algorithms {
			if algorithm == config.RoundRobin {
				return fmt.Errorf("%w: %d, set one with --quantum or scheduler.round_robin.time_quantum", scheduler.ErrInvalidQuantum, quantum)
			}
		}
	}

	for i, algorithm := range algorithms {
		var res scheduler.Result
		switch algorithm {
		case config.Priority:
			res = scheduler.Priority(processes)
		case config.SJF:
			res = scheduler.ShortestJobFirst(processes)
		case config.FCFS:
			res = scheduler.FirstComeFirstServe(processes)
		case config.RoundRobin:
			var err error
			if res, err = scheduler.RoundRobin(processes, quantum); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", config.ErrUnknownAlgorithm, algorithm)
		}

		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		report.Write(w, res)
	}
	return nil
}

func openProcessingFile(args ...string) (*os.File, func(), error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("%w: must give at most one scheduling file to process", ErrInvalidArgs)
	}
	/* process .csv file */
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}
