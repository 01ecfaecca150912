package domain

import "fmt"

// Task names a kind of generated artifact.
type Task string

const (
	TaskInit   Task = "init"
	TaskGoal   Task = "goal"
	TaskWhole  Task = "whole"
	TaskPlan   Task = "plan"
	TaskDetect Task = "detect"
)

// Tasks lists every known task in a stable order.
func Tasks() []Task {
	return []Task{TaskInit, TaskGoal, TaskWhole, TaskPlan, TaskDetect}
}

// ParseTask validates a task name.
func ParseTask(s string) (Task, error) {
	for _, t := range Tasks() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &OpError{
		Op:   "domain.parse_task",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("unknown task %q", s),
	}
}

// GenerationRequest is what a generator needs to produce text for a task.
type GenerationRequest struct {
	Task Task

	// Attempt is 1-based.
	Attempt int

	// Context carries already-known declarative text (domain, objects, init)
	// that a remote model would be prompted with.
	Context map[string]string
}

// GenerationResult is a validated generated artifact.
type GenerationResult struct {
	Task     Task
	Attempts int

	// Raw is the full generator output of the successful attempt.
	Raw string

	// Fragment is the extracted declarative fragment.
	Fragment string

	Init  []Predicate
	Goal  []Predicate
	Plan  []string
	Boxes []Box
}
