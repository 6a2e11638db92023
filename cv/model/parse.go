package model

import "gopkg.in/yaml.v3"

// Parse decodes YAML document text into a Document. Unknown keys are
// ignored; syntax errors and type mismatches are returned with the parser's
// own diagnostic (which includes line numbers). Empty text parses to the
// zero Document.
func Parse(text string) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
