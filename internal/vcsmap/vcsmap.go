// Package vcsmap discovers the Git working copies an IDE project maps.
//
// The IDE stores its version control roots in .idea/vcs.xml:
//
//	<project version="4">
//	  <component name="VcsDirectoryMappings">
//	    <mapping directory="$PROJECT_DIR$" vcs="Git" />
//	    <mapping directory="$PROJECT_DIR$/community" vcs="Git" />
//	  </component>
//	</project>
//
// Only Git mappings with a non-empty directory are returned.
package vcsmap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrConfigNotFound is returned when the mapping file is not a regular file.
var ErrConfigNotFound = errors.New("vcs mapping file not found")

// ProjectDirMacro is the IDE placeholder for the project directory.
const ProjectDirMacro = "$PROJECT_DIR$"

const (
	mappingsComponent = "VcsDirectoryMappings"
	gitVCS            = "Git"
)

type projectXML struct {
	XMLName    xml.Name
	Components []componentXML `xml:"component"`
}

type componentXML struct {
	Name     string       `xml:"name,attr"`
	Mappings []mappingXML `xml:"mapping"`
}

type mappingXML struct {
	Directory string `xml:"directory,attr"`
	VCS       string `xml:"vcs,attr"`
}

// Discover reads relPath below projectDir and returns the mapped Git
// directories in document order. Relative directories resolve against
// projectDir. A file without Git mappings yields an empty slice.
func Discover(projectDir, relPath string) ([]string, error) {
	path := filepath.Join(projectDir, filepath.FromSlash(relPath))

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parse(data, projectDir)
}

func parse(data []byte, projectDir string) ([]string, error) {
	var doc projectXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse vcs mappings: %w", err)
	}
	if doc.XMLName.Local != "project" {
		return []string{}, nil
	}

	dirs := []string{}
	for _, c := range doc.Components {
		if c.Name != mappingsComponent {
			continue
		}
		for _, m := range c.Mappings {
			if m.VCS != gitVCS || m.Directory == "" {
				continue
			}
			dirs = append(dirs, resolve(m.Directory, projectDir))
		}
	}
	return dirs, nil
}

func resolve(dir, projectDir string) string {
	dir = filepath.FromSlash(strings.ReplaceAll(dir, ProjectDirMacro, projectDir))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(projectDir, dir)
	}
	return filepath.Clean(dir)
}
