package documents

import "context"

// Repo defines persistence operations for the document text. Each
// implementation stores exactly one document; Save overwrites whatever
// was there before, and Load of an empty store returns ErrNotFound.
type Repo interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, text string) error
}
