package backup

import (
	"context"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/service/note"
	"github.com/heartmarshall/tagebuch-backend/internal/service/phrase"
	"github.com/heartmarshall/tagebuch-backend/internal/service/settings"
	"github.com/heartmarshall/tagebuch-backend/internal/service/vocabulary"
)

// ServiceRestorer restores records through the owning services.
type ServiceRestorer struct {
	Vocabulary *vocabulary.Service
	Phrases    *phrase.Service
	Notes      *note.Service
	Settings   *settings.Service
}

func (r ServiceRestorer) RestoreWord(ctx context.Context, w domain.VocabularyWord) error {
	_, err := r.Vocabulary.Restore(ctx, w)
	return err
}

func (r ServiceRestorer) RestorePhrase(ctx context.Context, p domain.Phrase) error {
	_, err := r.Phrases.Restore(ctx, p)
	return err
}

func (r ServiceRestorer) RestoreSettings(ctx context.Context, s domain.Settings) error {
	_, err := r.Settings.Restore(ctx, s)
	return err
}

func (r ServiceRestorer) RestoreNote(ctx context.Context, n domain.Note) error {
	_, err := r.Notes.Restore(ctx, n)
	return err
}
