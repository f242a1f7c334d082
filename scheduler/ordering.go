package scheduler

// Ordering compares two processes the way a C comparator does: negative when
// a runs first, positive when b does, zero on a tie. Ties keep input order.
type Ordering func(a, b Process) int

// ByPriority runs the lowest priority value first.
func ByPriority(a, b Process) int {
	return compare(a.Priority, b.Priority)
}

// ByBurstTime runs the shortest job first.
func ByBurstTime(a, b Process) int {
	return compare(a.BurstTime, b.BurstTime)
}

// ByArrival runs processes in the order they arrived.
func ByArrival(a, b Process) int {
	return compare(a.ArrivalTime, b.ArrivalTime)
}

func compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
