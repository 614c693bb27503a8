package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writePom(t *testing.T, dir, artifactID string, modules ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	body := `<?xml version="1.0"?><project><artifactId>` + artifactID + `</artifactId>`
	if len(modules) > 0 {
		body += "<modules>"
		for _, module := range modules {
			body += "<module>" + module + "</module>"
		}
		body += "</modules>"
	}
	body += "</project>"
	if err := os.WriteFile(filepath.Join(dir, "pom.xml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write pom: %v", err)
	}
}

func TestDiscoverProjectSingleModule(t *testing.T) {
	dir := t.TempDir()
	writePom(t, dir, "solo")
	project, err := discoverProject(dir)
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if len(project.Modules) != 1 || project.Modules[0].ID != "solo" {
		t.Errorf("expected single module [solo], got %+v", project.Modules)
	}
}

func TestDiscoverProjectNestedModules(t *testing.T) {
	dir := t.TempDir()
	writePom(t, dir, "parent", "core", "web")
	writePom(t, filepath.Join(dir, "core"), "core")
	writePom(t, filepath.Join(dir, "web"), "web", "web-api")
	writePom(t, filepath.Join(dir, "web", "web-api"), "web-api")

	project, err := discoverProject(dir)
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if project.Modules[0].ID != "parent" {
		t.Errorf("expected reactor root first, got %q", project.Modules[0].ID)
	}
	ids := make(map[string]bool)
	for _, module := range project.Modules {
		ids[module.ID] = true
	}
	for _, want := range []string{"parent", "core", "web", "web-api"} {
		if !ids[want] {
			t.Errorf("expected module %q to be discovered, got %+v", want, project.Modules)
		}
	}
}

func TestDiscoverProjectSkipsMissingModuleDirs(t *testing.T) {
	dir := t.TempDir()
	writePom(t, dir, "parent", "ghost")
	project, err := discoverProject(dir)
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if len(project.Modules) != 1 {
		t.Errorf("expected the missing module to be skipped, got %+v", project.Modules)
	}
}

func TestDiscoverProjectWithoutPomFails(t *testing.T) {
	if _, err := discoverProject(t.TempDir()); err == nil {
		t.Fatal("expected an error for a directory without pom.xml")
	}
}
