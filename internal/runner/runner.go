// Package runner launches build commands as external processes and turns
// their output into a stream of CommandUpdate events. Each launch owns two
// reader goroutines (stdout and stderr) plus a coordinator that waits for
// both streams and the exit status before publishing the single terminal
// event and closing the channel.
package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/berkano/mvndash/internal/session"
)

// updateBuffer is sized so that Started and a short burst of output never
// block the producers while the consumer is between polls.
const updateBuffer = 64

// Handle controls one running invocation. Exactly one live Handle exists
// per task; callers must not launch a new run for a task until the previous
// handle's stream has reached its terminal event.
type Handle struct {
	pid  int
	cmd  *exec.Cmd
	log  *session.Log
	task string

	done chan struct{}
}

// PID returns the OS process id of the invocation.
func (h *Handle) PID() int {
	if h == nil {
		return 0
	}
	return h.pid
}

// Done is closed after the terminal event has been published.
func (h *Handle) Done() <-chan struct{} {
	if h == nil {
		return nil
	}
	return h.done
}

// Kill forcefully terminates the process. It is idempotent: killing an
// already-terminated process is a no-op, and it is safe to call while the
// reader goroutines are still draining output. The terminal event still
// arrives exactly once, typically as an Error reflecting the killed status.
func (h *Handle) Kill() {
	if h == nil || h.cmd == nil || h.cmd.Process == nil {
		return
	}
	select {
	case <-h.done:
		return
	default:
	}
	h.log.Emit(session.Event{Event: "kill", Task: h.task, PID: h.pid})
	_ = h.cmd.Process.Kill()
}

// Launch starts executable with args in dir and returns a Handle plus the
// update channel. A spawn failure (executable not found, permission denied)
// is returned synchronously; no events are produced and no handle exists.
//
// On success the channel carries Started first, then OutputLine events as
// lines complete on either stream (stderr lines prefixed with ErrPrefix),
// and finally exactly one Completed or Error before the channel closes.
// Within one stream line order is preserved; across the two streams the
// interleaving is timing-dependent.
func Launch(log *session.Log, task, executable string, args []string, dir string) (*Handle, <-chan CommandUpdate, error) {
	cmd := exec.Command(executable, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		log.Emit(session.Event{
			Event:   "spawn_failed",
			Task:    task,
			Command: commandLine(executable, args),
			Detail:  map[string]string{"error": err.Error()},
		})
		return nil, nil, fmt.Errorf("spawn %s: %w", executable, err)
	}

	handle := &Handle{
		pid:  cmd.Process.Pid,
		cmd:  cmd,
		log:  log,
		task: task,
		done: make(chan struct{}),
	}
	log.Emit(session.Event{
		Event:   "launch",
		Task:    task,
		Command: commandLine(executable, args),
		PID:     handle.pid,
	})

	updates := make(chan CommandUpdate, updateBuffer)
	updates <- Started{PID: handle.pid}

	readErrs := make(chan error, 2)
	var readers sync.WaitGroup
	readers.Add(2)
	go readLines(stdout, "", updates, &readers, readErrs)
	go readLines(stderr, ErrPrefix, updates, &readers, readErrs)

	go func() {
		readers.Wait()
		close(readErrs)
		waitErr := cmd.Wait()
		terminal := classify(executable, waitErr, drainFirst(readErrs))
		if err, failed := terminal.(Error); failed {
			log.Emit(session.Event{
				Event: "exit", Task: task, PID: handle.pid,
				Detail: map[string]string{"error": err.Message},
			})
		} else {
			log.Emit(session.Event{Event: "exit", Task: task, PID: handle.pid})
		}
		updates <- terminal
		close(updates)
		close(handle.done)
	}()

	return handle, updates, nil
}

// readLines reads raw bytes from one stream until EOF, publishing one
// OutputLine per completed line. Invalid UTF-8 is lossily replaced, never
// fatal. A trailing partial line at EOF is flushed as a final line. A read
// failure other than EOF is reported through errs for the coordinator to
// fold into the terminal event.
func readLines(stream io.Reader, prefix string, updates chan<- CommandUpdate, readers *sync.WaitGroup, errs chan<- error) {
	defer readers.Done()
	reader := bufio.NewReader(stream)
	for {
		chunk, err := reader.ReadBytes('\n')
		if len(chunk) > 0 {
			updates <- OutputLine{Text: prefix + decodeLossy(chunk)}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				errs <- fmt.Errorf("stream read: %w", err)
			}
			return
		}
	}
}

// decodeLossy converts one raw line to text, dropping the trailing newline
// (and a preceding carriage return) and replacing invalid byte sequences
// with U+FFFD.
func decodeLossy(raw []byte) string {
	text := string(raw)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return strings.ToValidUTF8(text, "�")
}

// classify maps a wait result onto the terminal event. Exit 0 yields
// Completed. A reportable non-zero code yields an Error whose message
// contains "exit code {n}"; a signal death without a code omits the
// numeric suffix.
func classify(executable string, waitErr, readErr error) CommandUpdate {
	if waitErr == nil {
		if readErr != nil {
			return Error{Message: fmt.Sprintf("%s: %v", executable, readErr)}
		}
		return Completed{}
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return Error{Message: fmt.Sprintf("%s failed with exit code %d", executable, code)}
		}
		return Error{Message: fmt.Sprintf("%s terminated: %s", executable, exitErr.ProcessState.String())}
	}
	return Error{Message: fmt.Sprintf("%s failed: %v", executable, waitErr)}
}

func drainFirst(errs <-chan error) error {
	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func commandLine(executable string, args []string) string {
	if len(args) == 0 {
		return executable
	}
	return executable + " " + strings.Join(args, " ")
}

// ParseExitCode extracts the numeric exit code embedded in an Error
// message, returning -1 when the message carries no "exit code {n}"
// suffix (killed by signal, spawn-adjacent failures).
func ParseExitCode(message string) int {
	const marker = "exit code "
	index := strings.LastIndex(message, marker)
	if index < 0 {
		return -1
	}
	rest := message[index+len(marker):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return -1
	}
	code, err := strconv.Atoi(rest[:end])
	if err != nil {
		return -1
	}
	return code
}
