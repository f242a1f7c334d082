package scheduler

import "fmt"

// RoundRobinAlgorithm names the RoundRobin result.
const RoundRobinAlgorithm = "Round-robin"

// RoundRobin cycles through the unfinished processes in input order, giving
// each at most quantum time units per pass, until all of them complete.
// The returned processes keep input order.
func RoundRobin(processes []Process, quantum int64) (Result, error) {
	if quantum <= 0 {
		return Result{}, fmt.Errorf("%w: %d, must be positive", ErrInvalidQuantum, quantum)
	}

	var (
		currentTime int64
		completed   int
		scheduled   = clone(processes)
		remaining   = make([]int64, len(scheduled))
		gantt       = make([]TimeSlice, 0, len(scheduled))
	)

	for i := range scheduled {
		remaining[i] = scheduled[i].BurstTime
		if remaining[i] <= 0 {
			// never dispatched, so it would never be counted below
			scheduled[i].WaitingTime = 0
			completed++
		}
	}

	for completed < len(scheduled) {
		for i := range scheduled {
			if remaining[i] <= 0 {
				continue
			}
			start := currentTime
			if remaining[i] > quantum {
				currentTime += quantum
				remaining[i] -= quantum
			} else {
				currentTime += remaining[i]
				scheduled[i].WaitingTime = currentTime - scheduled[i].BurstTime
				remaining[i] = 0
				completed++
			}
			gantt = append(gantt, TimeSlice{
				PID:   scheduled[i].PID,
				Start: start,
				Stop:  currentTime,
			})
		}
	}

	for i := range scheduled {
		scheduled[i].TurnaroundTime = scheduled[i].WaitingTime + scheduled[i].BurstTime
	}

	return Result{
		Algorithm: RoundRobinAlgorithm,
		Quantum:   quantum,
		Processes: scheduled,
		Gantt:     gantt,
	}, nil
}
