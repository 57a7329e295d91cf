package outline

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse loads an outline file from disk, validates it, and returns the
// resulting document.
func Parse(path string) (*Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(path, 0, err)
	}

	var o Outline
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&o); err != nil {
		return nil, err
	}

	return &o, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
