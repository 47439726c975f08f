package assets

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/formats.yaml
var configFiles embed.FS

// Format pairs a sniffed content type with the extension stored keys carry.
type Format struct {
	ContentType string `yaml:"content_type"`
	Extension   string `yaml:"extension"`
}

type formatFile struct {
	Formats []Format `yaml:"formats"`
}

// FormatRegistry maps accepted upload content types to file extensions.
type FormatRegistry struct {
	byContentType map[string]Format
}

// NewFormatRegistry loads the embedded format YAML.
func NewFormatRegistry() (*FormatRegistry, error) {
	data, err := configFiles.ReadFile("config/formats.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read format config: %w", err)
	}

	var file formatFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal format config: %w", err)
	}

	r := &FormatRegistry{byContentType: make(map[string]Format, len(file.Formats))}
	for _, f := range file.Formats {
		r.byContentType[f.ContentType] = f
	}

	return r, nil
}

// Lookup returns the format for a sniffed content type, or false when the
// type is not an accepted upload format.
func (r *FormatRegistry) Lookup(contentType string) (Format, bool) {
	f, ok := r.byContentType[contentType]
	return f, ok
}
