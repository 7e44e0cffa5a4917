// shots.go
package qnull

/*
Shots describes how many samples an execution should draw. The zero value
means analytic execution (no sampling at all). A single count produces one
result set; partitioned counts produce one independent result set per
partition.
*/
type Shots struct {
	partitions []int
}

// NewShots requests a single shot count.
func NewShots(total int) Shots {
	return Shots{partitions: []int{total}}
}

// PartitionedShots requests one independent result set per count.
func PartitionedShots(counts ...int) Shots {
	partitions := make([]int, len(counts))
	copy(partitions, counts)
	return Shots{partitions: partitions}
}

// Analytic reports whether no sampling was requested.
func (s Shots) Analytic() bool {
	return len(s.partitions) == 0
}

// Total is the summed shot count across all partitions, zero when analytic.
func (s Shots) Total() int {
	total := 0
	for _, n := range s.partitions {
		total += n
	}
	return total
}

func (s Shots) HasPartitionedShots() bool {
	return len(s.partitions) > 1
}

// ExecutionPartitions yields the shot count for each independent result
// set. Analytic execution still produces exactly one result set, reported
// here as a zero shot count.
func (s Shots) ExecutionPartitions() []int {
	if len(s.partitions) == 0 {
		return []int{0}
	}
	return s.partitions
}
