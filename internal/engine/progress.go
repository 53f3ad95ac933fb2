package engine

import (
	"math"

	"github.com/google/uuid"

	"idealab/internal/storage"
)

// progressPercent is round(100 * done / total), 0 for an empty list.
func progressPercent(tasks []storage.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.IsDone {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}

// normalizeTasks assigns an id to every task that lacks one. Ids are unique
// within the plan by construction.
func normalizeTasks(tasks []storage.Task) []storage.Task {
	out := append([]storage.Task{}, tasks...)
	for i := range out {
		if out[i].TaskID == "" {
			out[i].TaskID = "t-" + uuid.NewString()
		}
	}
	return out
}
