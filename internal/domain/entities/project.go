package entities

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Project holds the version metadata read from the application directory:
// the project manifest (package.json) and the installed framework package
// metadata (node_modules/<framework>/package.json).
type Project struct {
	Dir                 string
	Name                string
	DeclaredVersion     string // range declared for the framework; empty when absent
	DeclaredPeerVersion string // range declared for the peer package; empty when absent
	InstalledVersion    string // exact version of the installed framework package
}

// packageManifest is the subset of package.json this tool reads.
type packageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// LoadProject reads the manifests for the application in dir. The installed
// framework package must be present; its absence is an unrecoverable
// precondition failure.
func LoadProject(dir, frameworkPkg, peerPkg string) (*Project, error) {
	manifest, err := readManifest(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read the project manifest: %w", err)
	}

	installed, err := readManifest(filepath.Join(dir, "node_modules", frameworkPkg, "package.json"))
	if err != nil {
		return nil, fmt.Errorf(
			"%s does not appear to be installed in %s (run your package manager install first): %w",
			frameworkPkg, dir, err,
		)
	}

	return &Project{
		Dir:                 dir,
		Name:                manifest.Name,
		DeclaredVersion:     declaredRange(manifest, frameworkPkg),
		DeclaredPeerVersion: declaredRange(manifest, peerPkg),
		InstalledVersion:    installed.Version,
	}, nil
}

func readManifest(path string) (*packageManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest packageManifest
	if unmarshalErr := json.Unmarshal(data, &manifest); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, unmarshalErr)
	}
	return &manifest, nil
}

// declaredRange looks a package up in dependencies first, then devDependencies.
func declaredRange(manifest *packageManifest, pkg string) string {
	if rng, ok := manifest.Dependencies[pkg]; ok {
		return rng
	}
	return manifest.DevDependencies[pkg]
}
