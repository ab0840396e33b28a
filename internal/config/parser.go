package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	inkerrors "github.com/alexisbeaulieu97/inkui/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument loads a showcase document from disk, validates it, and returns it.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, inkerrors.NewParseError(path, 0, err)
	}
	return DecodeDocument(path, data)
}

// DecodeDocument parses and validates document bytes. path is only used in errors.
func DecodeDocument(path string, data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, inkerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &doc, nil
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
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
