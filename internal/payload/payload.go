package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/playgrounds/internal/model"
)

// Raw records come from a JSON or YAML document holding one object or a
// list of objects. Read-only: nothing here writes back.

// Format is the encoding of a payload document.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnsupportedShape is returned when a document is neither an object nor
// a list of objects.
var ErrUnsupportedShape = errors.New("payload must be an object or a list of objects")

// ErrTrailingData is returned when input continues past the first document.
var ErrTrailingData = errors.New("payload must hold a single document")

// FormatFor picks a format from the file extension, defaulting to JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Load reads the raw records in the file at path.
func Load(path string) ([]model.RawRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(bytes.NewReader(b), FormatFor(path))
}

// Decode reads the raw records of one document from r. Anything after that
// document fails with ErrTrailingData.
func Decode(r io.Reader, f Format) ([]model.RawRecord, error) {
	var dec interface{ Decode(v any) error }
	prefix := "json decode"
	switch f {
	case YAML:
		dec, prefix = yaml.NewDecoder(r), "yaml decode"
	default:
		dec = json.NewDecoder(r)
	}

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.RawRecord{}, nil
		}
		return nil, fmt.Errorf("%s: %w", prefix, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", prefix, ErrTrailingData)
	}
	return records(doc)
}

func records(doc any) ([]model.RawRecord, error) {
	switch v := doc.(type) {
	case map[string]any:
		return []model.RawRecord{v}, nil
	case []any:
		out := make([]model.RawRecord, 0, len(v))
		for i, el := range v {
			m, ok := el.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, ErrUnsupportedShape)
			}
			out = append(out, m)
		}
		return out, nil
	}
	return nil, ErrUnsupportedShape
}
