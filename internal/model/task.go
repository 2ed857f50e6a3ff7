package model

// Task is a fully resolved task: every variable reference in its deps,
// commands and workdir has been substituted. Tasks are immutable for the
// duration of one invocation. A task with deps and no commands acts as a
// pure grouping node.
type Task struct {
	Name        string
	Description string
	Deps        []string
	Commands    []string
	WorkDir     string
}

// Plan is the dependency-ordered, deduplicated sequence of targets to
// execute for one request. It is owned by a single invocation.
type Plan struct {
	Requested []string
	Order     []string
}
