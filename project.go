package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type mavenModule struct {
	ID  string // artifactId, falling back to the directory name
	Dir string // absolute path to the module directory
}

type mavenProject struct {
	Root    string
	Name    string
	Modules []mavenModule // reactor root first, then nested modules
}

type pomFile struct {
	XMLName    xml.Name `xml:"project"`
	ArtifactID string   `xml:"artifactId"`
	Name       string   `xml:"name"`
	Modules    struct {
		Module []string `xml:"module"`
	} `xml:"modules"`
}

// discoverProject walks pom.xml <modules> declarations from root, producing
// one tab per reactor module. A directory without a pom is not a project.
func discoverProject(root string) (*mavenProject, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	pom, err := readPom(abs)
	if err != nil {
		return nil, fmt.Errorf("no Maven project at %s: %w", abs, err)
	}

	name := pom.Name
	if name == "" {
		name = pom.ArtifactID
	}
	if name == "" {
		name = filepath.Base(abs)
	}

	project := &mavenProject{Root: abs, Name: name}
	rootID := pom.ArtifactID
	if rootID == "" {
		rootID = filepath.Base(abs)
	}
	project.Modules = append(project.Modules, mavenModule{ID: rootID, Dir: abs})

	seen := map[string]bool{abs: true}
	collectModules(abs, pom, project, seen)

	// Nested module order follows pom declaration depth-first; duplicates
	// by artifactId keep the first occurrence.
	byID := map[string]bool{rootID: true}
	deduped := project.Modules[:1]
	for _, module := range project.Modules[1:] {
		if byID[module.ID] {
			continue
		}
		byID[module.ID] = true
		deduped = append(deduped, module)
	}
	project.Modules = deduped
	return project, nil
}

func collectModules(dir string, pom *pomFile, project *mavenProject, seen map[string]bool) {
	names := append([]string(nil), pom.Modules.Module...)
	sort.Strings(names)
	for _, rel := range names {
		moduleDir := filepath.Join(dir, filepath.FromSlash(rel))
		if seen[moduleDir] {
			continue
		}
		seen[moduleDir] = true
		modulePom, err := readPom(moduleDir)
		if err != nil {
			continue // declared but missing on disk; skip silently
		}
		id := modulePom.ArtifactID
		if id == "" {
			id = filepath.Base(moduleDir)
		}
		project.Modules = append(project.Modules, mavenModule{ID: id, Dir: moduleDir})
		collectModules(moduleDir, modulePom, project, seen)
	}
}

func readPom(dir string) (*pomFile, error) {
	data, err := os.ReadFile(filepath.Join(dir, "pom.xml"))
	if err != nil {
		return nil, err
	}
	var pom pomFile
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, fmt.Errorf("parse pom.xml: %w", err)
	}
	return &pom, nil
}
