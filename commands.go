package main

import "strings"

type goalEntry struct {
	label       string
	goals       []string
	description string
	// interactive goals prompt on a terminal and run through a PTY.
	interactive bool
	// custom entries take their goals from the command input instead.
	custom bool
}

func defaultGoalEntries() []goalEntry {
	return []goalEntry{
		{label: "Install", goals: []string{"clean", "install"}, description: "Clean and install the module"},
		{label: "Test", goals: []string{"test"}, description: "Run the module's tests"},
		{label: "Package", goals: []string{"package"}, description: "Build the module's artifact"},
		{label: "Verify", goals: []string{"verify"}, description: "Run integration checks"},
		{label: "Compile", goals: []string{"compile"}, description: "Compile only"},
		{label: "Clean", goals: []string{"clean"}, description: "Remove build output"},
		{label: "Dependency tree", goals: []string{"dependency:tree"}, description: "Print the dependency tree"},
		{label: "Archetype", goals: []string{"archetype:generate"}, description: "Generate from an archetype (interactive)", interactive: true},
		{label: "Custom…", description: "Type goals and flags by hand", custom: true},
	}
}

// buildArgs assembles the full argument vector for one invocation. The
// reactor root runs bare; any other module is selected with -pl plus -am so
// its in-project dependencies build first.
func buildArgs(entry goalEntry, moduleID string, rootModuleID string, profiles, flags []string) []string {
	args := []string{"-B"}
	if entry.interactive {
		args = args[:0] // Batch mode would defeat the interactive prompts.
	}
	if moduleID != rootModuleID && moduleID != "" {
		args = append(args, "-pl", moduleID, "-am")
	}
	if len(profiles) > 0 {
		args = append(args, "-P"+strings.Join(profiles, ","))
	}
	args = append(args, flags...)
	args = append(args, entry.goals...)
	return args
}

// parseCustomGoals splits a hand-typed command line into goal arguments.
// Quoting is not interpreted; Maven goals and flags do not contain spaces.
func parseCustomGoals(input string) []string {
	return strings.Fields(input)
}
