package model

import "path/filepath"

// Task pairs a search result with its resolved local destination path
type Task struct {
	Result      SearchResult
	Destination string
}

// NewTask derives the destination path by joining the destination root,
// repository name and file path, preserving the directory structure:
// root/org/repo/path/to/file.
func NewTask(root string, result SearchResult) Task {
	dest := filepath.Join(root,
		filepath.FromSlash(result.Repository),
		filepath.FromSlash(result.Path),
	)

	return Task{
		Result:      result,
		Destination: dest,
	}
}

// Outcome records the final state of one download task. Err is nil on
// success; Bytes is the number of bytes written.
type Outcome struct {
	Task  Task
	Bytes int64
	Err   error
}

// Succeeded reports whether the task completed without error
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Summary aggregates a batch of outcomes
type Summary struct {
	Succeeded int
	Failed    int
	Bytes     int64
}

// Summarize counts succeeded and failed outcomes and totals written bytes
func Summarize(outcomes []Outcome) Summary {
	var s Summary

	for _, o := range outcomes {
		if o.Succeeded() {
			s.Succeeded++
			s.Bytes += o.Bytes
		} else {
			s.Failed++
		}
	}

	return s
}
