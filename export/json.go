package export

import (
	"encoding/json"

	"elbow/core"
)

// JSONExporter dumps the scene and its routing result.
type JSONExporter struct{}

// NewJSONExporter creates a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

type jsonDocument struct {
	*Scene
	Local  []core.Point `json:"local"`
	Deltas []core.Point `json:"deltas"`
}

// Export writes the scene as indented JSON. Besides the absolute path it
// carries the path relative to the connector frame and the per-segment
// deltas.
func (e *JSONExporter) Export(s *Scene) ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	doc := jsonDocument{
		Scene:  s,
		Local:  s.Result.Local().Points,
		Deltas: s.Result.Path.Deltas(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// GetFileExtension returns the file extension for JSON.
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name.
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
