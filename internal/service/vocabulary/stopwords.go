package vocabulary

import "github.com/heartmarshall/tagebuch-backend/internal/domain"

var stopWords = func() map[string]struct{} {
	words := []string{
		"ich", "du", "er", "sie", "es", "wir", "ihr",
		"und", "aber", "oder", "denn",
		"ist", "bin", "sind", "war", "waren",
		"das", "der", "die", "den", "dem", "des",
		"eine", "ein", "einer", "eines", "einem", "einen",
		"zu", "in", "im", "auf", "mit", "von", "für", "an", "bei", "nach", "aus", "um",
		"über", "unter", "durch", "vor", "hinter", "neben", "zwischen",
		"nicht", "auch", "nur", "noch", "schon", "sehr", "so",
		"wie", "was", "wer", "wo", "wann", "warum",
		"haben", "hat", "hatte", "hatten", "sein", "wird", "werden", "wurde", "wurden",
		"kann", "könnte", "muss", "soll", "will", "mag", "darf", "möchte", "würde", "sollte",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopWord reports whether token is a German function word that is never
// tracked as vocabulary. Comparison is case-insensitive.
func IsStopWord(token string) bool {
	_, ok := stopWords[domain.WordKey(token)]
	return ok
}
