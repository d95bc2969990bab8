package rest

import (
	"strconv"
	"time"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/service/search"
)

type entryResponse struct {
	ID              int64      `json:"id"`
	EnglishText     string     `json:"english_text"`
	GermanText      string     `json:"german_text"`
	WordCount       int        `json:"word_count"`
	SessionDuration int        `json:"session_duration"`
	EntryDate       string     `json:"entry_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type entryWriteResponse struct {
	entryResponse
	NewWords []string `json:"new_words"`
}

type wordResponse struct {
	ID           int64      `json:"id"`
	Word         string     `json:"word"`
	FirstSeen    time.Time  `json:"first_seen"`
	Frequency    int        `json:"frequency"`
	LastReviewed *time.Time `json:"last_reviewed"`
}

type vocabularyStatsResponse struct {
	Total          int `json:"total"`
	ThisWeek       int `json:"thisWeek"`
	ThisMonth      int `json:"thisMonth"`
	AveragePerWeek int `json:"averagePerWeek"`
}

type dayResponse struct {
	Date             string `json:"date"`
	WordsLearned     int    `json:"words_learned"`
	EntriesWritten   int    `json:"entries_written"`
	MinutesPracticed int    `json:"minutes_practiced"`
}

type streakResponse struct {
	Current   int     `json:"current"`
	Longest   int     `json:"longest"`
	LastEntry *string `json:"lastEntry"`
}

type countPair struct {
	Total    int `json:"total"`
	ThisWeek int `json:"thisWeek"`
}

type totalOnly struct {
	Total int `json:"total"`
}

type progressStatsResponse struct {
	Vocabulary countPair `json:"vocabulary"`
	Entries    countPair `json:"entries"`
	Words      totalOnly `json:"words"`
	Time       totalOnly `json:"time"`
}

type chartDatasets struct {
	Words   []int `json:"words"`
	Entries []int `json:"entries"`
	Minutes []int `json:"minutes"`
}

type chartResponse struct {
	Labels   []string      `json:"labels"`
	Datasets chartDatasets `json:"datasets"`
}

type dashboardResponse struct {
	Stats   progressStatsResponse `json:"stats"`
	Streak  streakResponse        `json:"streak"`
	History []dayResponse         `json:"history"`
}

type phraseResponse struct {
	ID            *int64     `json:"id,omitempty"`
	English       string     `json:"english"`
	German        string     `json:"german"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	TimesReviewed int        `json:"times_reviewed"`
	BuiltIn       bool       `json:"builtin"`
}

type settingsResponse struct {
	DailyGoalMinutes  int        `json:"daily_goal_minutes"`
	DailySentenceGoal int        `json:"daily_sentence_goal"`
	Theme             string     `json:"theme"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

type sentenceResponse struct {
	ID       string    `json:"id"`
	Sentence string    `json:"sentence"`
	Language string    `json:"language"`
	Date     time.Time `json:"date"`
	EntryID  int64     `json:"entry_id"`
}

type searchCounts struct {
	Vocabulary       int `json:"vocabulary"`
	JournalSentences int `json:"journal_sentences"`
}

type searchResponse struct {
	Vocabulary       []wordResponse     `json:"vocabulary"`
	JournalSentences []sentenceResponse `json:"journal_sentences"`
	Counts           searchCounts       `json:"counts"`
}

func toEntryResponse(e domain.JournalEntry) entryResponse {
	resp := entryResponse{
		ID:              e.ID,
		EnglishText:     e.EnglishText,
		GermanText:      e.GermanText,
		WordCount:       e.WordCount,
		SessionDuration: e.SessionDuration,
		EntryDate:       domain.FormatDay(e.EntryDate),
		CreatedAt:       e.CreatedAt,
	}
	if !e.UpdatedAt.IsZero() && !e.UpdatedAt.Equal(e.CreatedAt) {
		u := e.UpdatedAt
		resp.UpdatedAt = &u
	}
	return resp
}

func toEntryResponses(entries []domain.JournalEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

func toEntryWriteResponse(e domain.JournalEntry, newWords []domain.VocabularyWord) entryWriteResponse {
	words := make([]string, 0, len(newWords))
	for _, w := range newWords {
		words = append(words, w.Word)
	}
	return entryWriteResponse{entryResponse: toEntryResponse(e), NewWords: words}
}

func toWordResponse(w domain.VocabularyWord) wordResponse {
	return wordResponse{
		ID:           w.ID,
		Word:         w.Word,
		FirstSeen:    w.FirstSeen,
		Frequency:    w.Frequency,
		LastReviewed: w.LastReviewed,
	}
}

func toWordResponses(words []domain.VocabularyWord) []wordResponse {
	out := make([]wordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, toWordResponse(w))
	}
	return out
}

func toDayResponse(p domain.DailyProgress) dayResponse {
	return dayResponse{
		Date:             domain.FormatDay(p.Date),
		WordsLearned:     p.WordsLearned,
		EntriesWritten:   p.EntriesWritten,
		MinutesPracticed: p.MinutesPracticed,
	}
}

func toDayResponses(days []domain.DailyProgress) []dayResponse {
	out := make([]dayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, toDayResponse(d))
	}
	return out
}

func toStreakResponse(s domain.Streak) streakResponse {
	resp := streakResponse{Current: s.Current, Longest: s.Longest}
	if s.LastActive != nil {
		d := domain.FormatDay(*s.LastActive)
		resp.LastEntry = &d
	}
	return resp
}

func toProgressStatsResponse(s domain.ProgressStats) progressStatsResponse {
	return progressStatsResponse{
		Vocabulary: countPair{Total: s.VocabularyTotal, ThisWeek: s.VocabularyThisWeek},
		Entries:    countPair{Total: s.EntriesTotal, ThisWeek: s.EntriesThisWeek},
		Words:      totalOnly{Total: s.WordsWritten},
		Time:       totalOnly{Total: s.MinutesPracticed},
	}
}

func toChartResponse(c domain.ChartData) chartResponse {
	return chartResponse{
		Labels: c.Labels,
		Datasets: chartDatasets{
			Words:   c.Words,
			Entries: c.Entries,
			Minutes: c.Minutes,
		},
	}
}

func toPhraseResponse(p domain.Phrase) phraseResponse {
	resp := phraseResponse{
		English:       p.English,
		German:        p.German,
		TimesReviewed: p.TimesReviewed,
		BuiltIn:       p.BuiltIn,
	}
	if !p.BuiltIn {
		id, created := p.ID, p.CreatedAt
		resp.ID = &id
		resp.CreatedAt = &created
	}
	return resp
}

func toSettingsResponse(s domain.Settings) settingsResponse {
	resp := settingsResponse{
		DailyGoalMinutes:  s.DailyGoalMinutes,
		DailySentenceGoal: s.DailySentenceGoal,
		Theme:             string(s.Theme),
	}
	if !s.UpdatedAt.IsZero() {
		u := s.UpdatedAt
		resp.UpdatedAt = &u
	}
	return resp
}

func toSearchResponse(res *domain.SearchResult) searchResponse {
	sentences := make([]sentenceResponse, 0, len(res.Sentences))
	for _, m := range res.Sentences {
		id := strconv.FormatInt(m.EntryID, 10)
		if m.Language == search.LanguageEnglish {
			id += "-en"
		}
		sentences = append(sentences, sentenceResponse{
			ID:       id,
			Sentence: m.Sentence,
			Language: m.Language,
			Date:     m.CreatedAt,
			EntryID:  m.EntryID,
		})
	}
	return searchResponse{
		Vocabulary:       toWordResponses(res.Vocabulary),
		JournalSentences: sentences,
		Counts: searchCounts{
			Vocabulary:       len(res.Vocabulary),
			JournalSentences: len(sentences),
		},
	}
}
