package schema

import (
	"bytes"
	"io"
	"os"

	"github.com/mangohow/specification/internal/errors"
	"gopkg.in/yaml.v3"
)

type document struct {
	Entities []Entity `yaml:"entities"`
}

// Parse decodes a YAML descriptor. Unknown keys are rejected.
func Parse(data []byte) (*Descriptor, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return New()
		}
		return nil, errors.Wrapf(err, "decode schema")
	}

	return New(doc.Entities...)
}

func LoadFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read schema file %s", path)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load schema file %s", path)
	}
	return d, nil
}

func (d *Descriptor) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(document{Entities: d.Entities()}); err != nil {
		return errors.Wrapf(err, "encode schema")
	}
	return encoder.Close()
}
