package loader

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLDecoder decodes YAML. Unknown keys are rejected.
type YAMLDecoder struct{}

// Decode implements Decoder.
func (YAMLDecoder) Decode(source string, data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty document
		}
		return &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return nil
}
