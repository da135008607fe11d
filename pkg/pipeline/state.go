package pipeline

// Phase is the phase of a pipeline run.
type Phase int

const (
	Pending Phase = iota
	Running
	Committed
	Aborted
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Committed:
		return "committed"
	case Aborted:
		return "aborted"
	}

	return "unknown"
}

// State is the phase of a run and, while running or once aborted, the index of the step
// concerned. Step is -1 when a run aborts before its first step for a reason that no step can
// be blamed for, such as an invalid size.
type State struct {
	Phase Phase
	Step  int
}
