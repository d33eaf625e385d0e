package app

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Encoding names a payload output format.
type Encoding string

const (
	// EncodingJSON is the default single-line JSON object.
	EncodingJSON Encoding = "json"

	// EncodingYAML renders a YAML mapping.
	EncodingYAML Encoding = "yaml"

	// EncodingTable renders a human-readable text table.
	EncodingTable Encoding = "table"
)

// ParseEncoding validates an output format name.
func ParseEncoding(raw string) (Encoding, error) {
	switch Encoding(raw) {
	case EncodingJSON, EncodingYAML, EncodingTable:
		return Encoding(raw), nil
	default:
		return "", zerr.With(domain.ErrUnknownEncoding, "output", raw)
	}
}

// Encode writes the resolved versions to w in the given format.
func Encode(w io.Writer, encoding Encoding, versions domain.Resolution) error {
	payload := versions.Strings()

	switch encoding {
	case EncodingJSON:
		return encodeJSON(w, payload)
	case EncodingYAML:
		return encodeYAML(w, payload)
	case EncodingTable:
		names := make([]string, 0, len(payload))
		for name := range payload {
			names = append(names, name)
		}
		sort.Strings(names)

		t := newTable(w, table.Row{"Package", "Version"})
		for _, name := range names {
			t.AppendRow(table.Row{name, payload[name]})
		}
		t.Render()
		return nil
	default:
		return zerr.With(domain.ErrUnknownEncoding, "output", string(encoding))
	}
}

// SourceInfo describes one registered source for the sources listing.
type SourceInfo struct {
	Name       string `json:"name" yaml:"name"`
	Kind       string `json:"kind" yaml:"kind"`
	Cascade    bool   `json:"cascade" yaml:"cascade"`
	Identifier string `json:"identifier" yaml:"identifier"`
}

// EncodeSources writes the source listing to w in the given format.
func EncodeSources(w io.Writer, encoding Encoding, infos []SourceInfo) error {
	switch encoding {
	case EncodingJSON:
		return encodeJSON(w, infos)
	case EncodingYAML:
		return encodeYAML(w, infos)
	case EncodingTable:
		t := newTable(w, table.Row{"Source", "Kind", "Cascade", "Identifier"})
		for _, info := range infos {
			cascade := "no"
			if info.Cascade {
				cascade = "yes"
			}
			t.AppendRow(table.Row{info.Name, info.Kind, cascade, info.Identifier})
		}
		t.Render()
		return nil
	default:
		return zerr.With(domain.ErrUnknownEncoding, "output", string(encoding))
	}
}

func encodeJSON(w io.Writer, payload any) error {
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		return zerr.Wrap(err, "failed to encode result")
	}
	return nil
}

func encodeYAML(w io.Writer, payload any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(payload); err != nil {
		return zerr.Wrap(err, "failed to encode result")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to encode result")
	}
	return nil
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(header)
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	return t
}
