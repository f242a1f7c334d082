package scheduler

type (
	// Process is one entry of the batch. WaitingTime and TurnaroundTime are
	// outputs, filled in by the schedulers.
	Process struct {
		PID            int64
		BurstTime      int64
		ArrivalTime    int64
		Priority       int64
		WaitingTime    int64
		TurnaroundTime int64
	}
	// TimeSlice is one dispatch on the CPU, used for the Gantt chart.
	TimeSlice struct {
		PID   int64
		Start int64
		Stop  int64
	}
	// Result is the outcome of running one algorithm over a batch.
	Result struct {
		Algorithm string
		Quantum   int64
		Processes []Process
		Gantt     []TimeSlice
	}
)

// clone returns a copy of processes so schedulers never touch the caller's slice.
func clone(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	return out
}

// AverageWait is the mean waiting time, 0 for an empty batch.
func (r Result) AverageWait() float64 {
	if len(r.Processes) == 0 {
		return 0
	}
	var total int64
	for i := range r.Processes {
		total += r.Processes[i].WaitingTime
	}
	return float64(total) / float64(len(r.Processes))
}

// AverageTurnaround is the mean turnaround time, 0 for an empty batch.
func (r Result) AverageTurnaround() float64 {
	if len(r.Processes) == 0 {
		return 0
	}
	var total int64
	for i := range r.Processes {
		total += r.Processes[i].TurnaroundTime
	}
	return float64(total) / float64(len(r.Processes))
}

// Completion is the time the last dispatch finished.
func (r Result) Completion() int64 {
	if len(r.Gantt) == 0 {
		return 0
	}
	return r.Gantt[len(r.Gantt)-1].Stop
}

// Throughput is processes completed per time unit.
func (r Result) Throughput() float64 {
	completion := r.Completion()
	if completion <= 0 {
		return 0
	}
	return float64(len(r.Processes)) / float64(completion)
}
