package scheduler

import "sort"

// Algorithm names, used as report titles.
const (
	// PriorityAlgorithm names the Priority result.
	PriorityAlgorithm = "Priority"
	// SJFAlgorithm names the ShortestJobFirst result.
	SJFAlgorithm = "Shortest-job-first"
	// FCFSAlgorithm names the FirstComeFirstServe result.
	FCFSAlgorithm = "First-come, first-serve"
)

// NonPreemptive runs every process to completion, one at a time, in the order
// given by order. The returned processes are in that schedule order; the input
// slice is left untouched.
func NonPreemptive(algorithm string, processes []Process, order Ordering) Result {
	var (
		serviceTime int64
		scheduled   = clone(processes)
		gantt       = make([]TimeSlice, 0, len(processes))
	)

	sort.SliceStable(scheduled, func(i, j int) bool {
		return order(scheduled[i], scheduled[j]) < 0
	})

	for i := range scheduled {
		scheduled[i].WaitingTime = serviceTime
		scheduled[i].TurnaroundTime = scheduled[i].WaitingTime + scheduled[i].BurstTime
		start := serviceTime
		serviceTime += scheduled[i].BurstTime

		gantt = append(gantt, TimeSlice{
			PID:   scheduled[i].PID,
			Start: start,
			Stop:  serviceTime,
		})
	}

	return Result{
		Algorithm: algorithm,
		Processes: scheduled,
		Gantt:     gantt,
	}
}

// Priority schedules the lowest priority value first.
func Priority(processes []Process) Result {
	return NonPreemptive(PriorityAlgorithm, processes, ByPriority)
}

// ShortestJobFirst schedules the shortest burst first.
func ShortestJobFirst(processes []Process) Result {
	return NonPreemptive(SJFAlgorithm, processes, ByBurstTime)
}

// FirstComeFirstServe schedules in arrival order, which is input order when
// every process arrives at 0.
func FirstComeFirstServe(processes []Process) Result {
	return NonPreemptive(FCFSAlgorithm, processes, ByArrival)
}
