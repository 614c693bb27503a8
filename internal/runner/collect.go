package runner

import "errors"

// ErrChannelClosed reports an update stream that ended without a terminal
// event. This is an integration bug on the producer side, distinct from a
// normal Error event, and is never swallowed.
var ErrChannelClosed = errors.New("channel closed unexpectedly")

// ExitError is a failed run as reported by the terminal Error event.
type ExitError struct {
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// ExitCode returns the exit code embedded in the message, or -1 when the
// process died without a reportable code.
func (e *ExitError) ExitCode() int { return ParseExitCode(e.Message) }

// Result is everything a synchronous caller learns from one invocation.
type Result struct {
	PID   int
	Lines []string
}

// Collect blockingly drains updates until the terminal event. A Completed
// terminal yields a nil error; an Error terminal yields *ExitError. If the
// channel closes without a terminal event Collect returns ErrChannelClosed
// alongside whatever output was captured.
func Collect(updates <-chan CommandUpdate) (Result, error) {
	var result Result
	for update := range updates {
		switch update := update.(type) {
		case Started:
			result.PID = update.PID
		case OutputLine:
			result.Lines = append(result.Lines, update.Text)
		case Completed:
			return result, nil
		case Error:
			return result, &ExitError{Message: update.Message}
		}
	}
	return result, ErrChannelClosed
}
