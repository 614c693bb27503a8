package runner

// CommandUpdate is one event in a build invocation's stream. For every
// launch the consumer sees Started first, zero or more OutputLine events,
// and exactly one terminal event (Completed or Error) last, after which the
// channel is closed.
type CommandUpdate interface {
	isUpdate()
}

// Started reports that the OS confirmed the process exists.
type Started struct {
	PID int
}

// OutputLine carries one complete line of output. Lines read from stderr
// are prefixed with ErrPrefix.
type OutputLine struct {
	Text string
}

// Completed reports a zero exit status.
type Completed struct{}

// Error reports a non-zero exit, a killed process, or a stream failure
// after partial output. When the exit code is reportable the message
// contains the substring "exit code {n}".
type Error struct {
	Message string
}

func (Started) isUpdate()    {}
func (OutputLine) isUpdate() {}
func (Completed) isUpdate()  {}
func (Error) isUpdate()      {}

// ErrPrefix marks lines that arrived on the process's stderr stream.
const ErrPrefix = "[ERR] "
