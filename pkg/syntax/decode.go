package syntax

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeError reports a failure to decode a serialized parse tree.
type DecodeError struct {
	Path    string
	Message string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode error: %s", e.Message)
	}
	return fmt.Sprintf("decode error in %s: %s", e.Path, e.Message)
}

// Common decode error messages.
const (
	ErrUnknownFormat = "unknown tree format %q (want json or yaml)"
)

// UnmarshalDocument decodes a serialized parse tree. format is "json" or
// "yaml".
func UnmarshalDocument(data []byte, format string) (*Document, error) {
	var doc Document
	switch format {
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, &DecodeError{Message: err.Error()}
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &DecodeError{Message: err.Error()}
		}
	default:
		return nil, &DecodeError{Message: fmt.Sprintf(ErrUnknownFormat, format)}
	}
	return &doc, nil
}

// LoadDocument reads a serialized parse tree from path. The format is taken
// from the file extension unless format is non-empty.
func LoadDocument(path, format string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	doc, err := UnmarshalDocument(data, format)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Path = path
		}
		return nil, err
	}
	return doc, nil
}
