package runner

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/creack/pty"

	"github.com/berkano/mvndash/internal/session"
)

// LaunchPTY starts executable attached to a pseudo-terminal instead of
// separate pipes. Goals that probe for a TTY (interactive archetype
// prompts, tools that refuse to colorize pipes) need this mode. The two
// streams arrive merged, so lines carry no ErrPrefix; every other part of
// the update contract matches Launch.
func LaunchPTY(log *session.Log, task, executable string, args []string, dir string) (*Handle, <-chan CommandUpdate, error) {
	cmd := exec.Command(executable, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	ptmx, err := pty.Start(cmd)
	if err != nil {
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
		Detail:  map[string]string{"mode": "pty"},
	})

	updates := make(chan CommandUpdate, updateBuffer)
	updates <- Started{PID: handle.pid}

	// The pty master reports an error (EIO on Linux) once the child exits;
	// in this mode any read error is end-of-stream, not a stream failure,
	// so the reader's error report is dropped.
	readErrs := make(chan error, 1)
	var readers sync.WaitGroup
	readers.Add(1)
	go readLines(ptmx, "", updates, &readers, readErrs)

	go func() {
		readers.Wait()
		close(readErrs)
		_ = ptmx.Close()
		waitErr := cmd.Wait()
		terminal := classify(executable, waitErr, nil)
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
