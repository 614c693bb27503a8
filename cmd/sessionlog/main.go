// Command sessionlog renders a mvndash session log (JSONL) as a readable
// per-session report: runs grouped under their session id, with command,
// pid and outcome on one line each.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/berkano/mvndash/internal/session"
)

func main() {
	var inputPath string
	var outputPath string
	var sessionFilter string
	var taskFilter string
	flag.StringVar(&inputPath, "in", "", "session log file path (required)")
	flag.StringVar(&outputPath, "out", "", "output file path (optional, defaults to stdout)")
	flag.StringVar(&sessionFilter, "session", "", "show only events from this session id")
	flag.StringVar(&taskFilter, "task", "", "show only events for this module/task")
	flag.Parse()

	if inputPath == "" {
		exitWithError(errors.New("missing --in path"))
	}

	events, err := parseLogFile(inputPath)
	if err != nil {
		exitWithError(fmt.Errorf("parse log: %w", err))
	}
	events = filterEvents(events, sessionFilter, taskFilter)

	rendered := renderEvents(events)
	if outputPath == "" {
		fmt.Print(rendered)
		return
	}
	if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
		exitWithError(fmt.Errorf("write output: %w", err))
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "sessionlog: %v\n", err)
	os.Exit(1)
}

func parseLogFile(path string) ([]session.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parseLog(bufio.NewScanner(file))
}

func parseLog(scanner *bufio.Scanner) ([]session.Event, error) {
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var events []session.Event
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var event session.Event
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			// Truncated trailing writes happen when the dashboard was
			// killed mid-write; skip the line rather than fail the report.
			fmt.Fprintf(os.Stderr, "sessionlog: skipping malformed line %d\n", lineNo)
			continue
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}

func filterEvents(events []session.Event, sessionID, task string) []session.Event {
	if sessionID == "" && task == "" {
		return events
	}
	var kept []session.Event
	for _, event := range events {
		if sessionID != "" && event.SessionID != sessionID {
			continue
		}
		if task != "" && event.Task != task {
			continue
		}
		kept = append(kept, event)
	}
	return kept
}

func renderEvents(events []session.Event) string {
	if len(events) == 0 {
		return "no events\n"
	}

	// Group by session, keeping first-seen order.
	order := make([]string, 0)
	grouped := make(map[string][]session.Event)
	for _, event := range events {
		if _, ok := grouped[event.SessionID]; !ok {
			order = append(order, event.SessionID)
		}
		grouped[event.SessionID] = append(grouped[event.SessionID], event)
	}

	var out strings.Builder
	for _, id := range order {
		group := grouped[id]
		label := id
		if label == "" {
			label = "(no session id)"
		}
		fmt.Fprintf(&out, "session %s  (%d events, %s .. %s)\n",
			label, len(group),
			group[0].Timestamp.Format("2006-01-02 15:04:05"),
			group[len(group)-1].Timestamp.Format("15:04:05"))
		for _, event := range group {
			out.WriteString("  ")
			out.WriteString(formatEvent(event))
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func formatEvent(event session.Event) string {
	var parts []string
	parts = append(parts, event.Timestamp.Format("15:04:05"))
	parts = append(parts, event.Event)
	if event.Task != "" {
		parts = append(parts, "task="+event.Task)
	}
	if event.PID != 0 {
		parts = append(parts, fmt.Sprintf("pid=%d", event.PID))
	}
	if event.Command != "" {
		parts = append(parts, "cmd="+event.Command)
	}
	if len(event.Detail) > 0 {
		keys := make([]string, 0, len(event.Detail))
		for key := range event.Detail {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			parts = append(parts, key+"="+event.Detail[key])
		}
	}
	return strings.Join(parts, "  ")
}
