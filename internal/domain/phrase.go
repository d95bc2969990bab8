package domain

import "time"

// Phrase is an English/German phrase pair. Built-in phrases have no ID.
type Phrase struct {
	ID            int64
	English       string
	German        string
	CreatedAt     time.Time
	TimesReviewed int
	BuiltIn       bool
}

// BuiltInPhrases are always offered alongside custom phrases.
var BuiltInPhrases = []Phrase{
	{English: "I agree with you up to a point.", German: "Ich stimme dir bis zu einem gewissen Punkt zu.", BuiltIn: true},
	{English: "That depends on...", German: "Das kommt darauf an...", BuiltIn: true},
	{English: "In my opinion...", German: "Meiner Meinung nach...", BuiltIn: true},
	{English: "I am not sure if...", German: "Ich bin mir nicht sicher, ob...", BuiltIn: true},
	{English: "Can you please explain that?", German: "Kannst du das bitte erklären?", BuiltIn: true},
	{English: "On the one hand... on the other hand...", German: "Einerseits... andererseits...", BuiltIn: true},
	{English: "It makes no difference to me.", German: "Das ist mir egal.", BuiltIn: true},
	{English: "I would like to suggest that...", German: "Ich möchte vorschlagen, dass...", BuiltIn: true},
}
