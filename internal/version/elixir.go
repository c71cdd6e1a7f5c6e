package version

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// elixirVersionRegex matches version strings like "1.16.2" or "1.17.0-rc.0".
var elixirVersionRegex = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// ElixirInfo contains Elixir runtime information.
type ElixirInfo struct {
	// Version is the Elixir runtime version.
	Version string `json:"version"`

	// Path is the path to the elixir binary.
	Path string `json:"path"`

	// Found indicates if the elixir binary was found.
	Found bool `json:"found"`

	// Message provides additional information when detection fails.
	Message string `json:"message,omitempty"`
}

// DetectElixir finds the Elixir runtime and reports its version.
func DetectElixir() ElixirInfo {
	path, err := exec.LookPath("elixir")
	if err != nil {
		return ElixirInfo{
			Found:   false,
			Message: "elixir binary not found in PATH",
		}
	}

	v, err := getElixirVersion(path)
	if err != nil {
		return ElixirInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get elixir version: " + err.Error(),
		}
	}

	return ElixirInfo{
		Version: v,
		Path:    path,
		Found:   true,
	}
}

// getElixirVersion executes elixir and extracts System.version().
func getElixirVersion(elixirPath string) (string, error) {
	cmd := exec.Command(elixirPath, "-e", "IO.puts(System.version())")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractElixirVersion(out.String())
}

// extractElixirVersion extracts the version number from elixir output.
func extractElixirVersion(output string) (string, error) {
	match := elixirVersionRegex.FindString(strings.TrimSpace(output))
	if match == "" {
		return "", fmt.Errorf("no version in output %q", output)
	}
	return match, nil
}

// String returns a human-readable Elixir runtime info string.
func (e ElixirInfo) String() string {
	if !e.Found {
		return "  Runtime Version: not found\n  Runtime Path:    -"
	}

	v := e.Version
	if v == "" {
		v = "unknown (" + e.Message + ")"
	}

	return fmt.Sprintf("  Runtime Version: %s\n  Runtime Path:    %s", v, e.Path)
}
