package export

import (
	"encoding/json"
	"io"

	"github.com/designkit/tokens"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Document is the structured form shared by the JSON and YAML emitters.
type Document struct {
	Brand       string       `json:"brand" yaml:"brand"`
	Fingerprint string       `json:"fingerprint" yaml:"fingerprint"`
	Format      string       `json:"format" yaml:"format"`
	Groups      []GroupEntry `json:"groups" yaml:"groups"`
}

// GroupEntry is one named scale of a Document.
type GroupEntry struct {
	Name  string      `json:"name" yaml:"name"`
	Stops []StopEntry `json:"stops" yaml:"stops"`
}

// StopEntry is one stop of a scale.
type StopEntry struct {
	Step  int    `json:"step" yaml:"step"`
	Token string `json:"token" yaml:"token"`
	Value string `json:"value" yaml:"value"`
}

// NewDocument builds the structured form of a palette. Groups keep the
// palette order so encoders produce stable output.
func NewDocument(p tokens.Palette, opts ...Option) Document {
	o := newOptions(opts)
	doc := Document{
		Brand:       p.Brand,
		Fingerprint: p.Fingerprint(),
		Format:      o.format.String(),
	}
	for _, g := range p.Groups() {
		entry := GroupEntry{Name: g.Name, Stops: make([]StopEntry, 0, len(g.Stops))}
		for _, s := range g.Stops {
			entry.Stops = append(entry.Stops, StopEntry{
				Step:  s.Step,
				Token: o.tokenName(g.Name, s.Step),
				Value: tokens.FormatColor(s, o.format),
			})
		}
		doc.Groups = append(doc.Groups, entry)
	}
	return doc
}

// Lookup returns the value of a stop by group name and step.
func (d Document) Lookup(group string, step int) (string, bool) {
	for _, g := range d.Groups {
		if g.Name != group {
			continue
		}
		for _, s := range g.Stops {
			if s.Step == step {
				return s.Value, true
			}
		}
	}
	return "", false
}

// JSON writes the palette document as indented JSON.
func JSON(w io.Writer, p tokens.Palette, opts ...Option) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(p, opts...)); err != nil {
		return writeFailed(err, "json")
	}
	return nil
}

// YAML writes the palette document as YAML.
func YAML(w io.Writer, p tokens.Palette, opts ...Option) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(p, opts...)); err != nil {
		return writeFailed(err, "yaml")
	}
	if err := enc.Close(); err != nil {
		return writeFailed(err, "yaml")
	}
	return nil
}

// DecodeYAML parses a document previously written by YAML.
func DecodeYAML(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, zerr.Wrap(err, "decode yaml document")
	}
	return doc, nil
}

// DecodeJSON parses a document previously written by JSON.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, zerr.Wrap(err, "decode json document")
	}
	return doc, nil
}
