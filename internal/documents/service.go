package documents

import (
	"context"
	_ "embed"
	"errors"

	"cvbuilder/cv/model"
)

// starterDocument seeds the editor on first run, before anything has
// been saved. It is embedded so a fresh deployment works with no data
// file present.
//
//go:embed starter.yaml
var starterDocument string

// Service contains business logic for the stored document: parse
// before persist, and a starter document when the store is empty.
type Service struct {
	Repo Repo
}

// Load returns the current document text. When nothing has been saved
// yet it returns the embedded starter document so the editor always
// opens with something renderable.
func (s *Service) Load(ctx context.Context) (string, error) {
	text, err := s.Repo.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return starterDocument, nil
		}
		return "", err
	}
	return text, nil
}

// Save persists the document text after validating it. Invalid text is
// refused with an *InvalidDocumentError and the store is left
// untouched.
func (s *Service) Save(ctx context.Context, text string) error {
	if _, err := s.Validate(text); err != nil {
		return err
	}
	return s.Repo.Save(ctx, text)
}

// Validate parses the text and reports the first problem found. It
// never touches the store, so it is safe to call on every keystroke.
func (s *Service) Validate(text string) (model.Document, error) {
	doc, err := model.Parse(text)
	if err != nil {
		return model.Document{}, &InvalidDocumentError{Err: err}
	}
	return doc, nil
}
