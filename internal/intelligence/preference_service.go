package intelligence

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dferrell/cadence/internal/domain"
	"github.com/dferrell/cadence/internal/importer"
	"github.com/dferrell/cadence/internal/llm"
)

// ExtractionInput carries one raw client record into preference extraction.
type ExtractionInput struct {
	Record importer.ClientRecord
	Today  time.Time
}

// Extraction is the structured result, ready to merge into a domain.Client.
type Extraction struct {
	Location     domain.Location
	DurationMin  int // 0 when the input does not state one
	WeeklyCount  int // 0 when the input does not state one
	Preferences  []domain.Preference
	BlockedDates []time.Time
	Source       string // "llm" or "rules"
}

const (
	SourceLLM   = "llm"
	SourceRules = "rules"
)

// PreferenceService turns raw client records into structured preferences.
// When the LLM is enabled it reads the free-text notes as well; otherwise,
// or whenever the model fails, it falls back to deterministic parsing of the
// structured columns.
type PreferenceService struct {
	cfg    llm.Config
	client llm.Client
	log    *zap.Logger
}

func NewPreferenceService(cfg llm.Config, client llm.Client, log *zap.Logger) *PreferenceService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PreferenceService{cfg: cfg, client: client, log: log}
}

// Extract never fails outright: the rule-based path handles any record that
// passed importer validation.
func (s *PreferenceService) Extract(ctx context.Context, in ExtractionInput) *Extraction {
	if !s.cfg.Enabled || s.client == nil {
		return s.rulesExtract(in)
	}

	ext, err := s.llmExtract(ctx, in)
	if err != nil {
		s.log.Warn("llm extraction failed, using rule-based parsing",
			zap.String("client", in.Record.Name),
			zap.Error(err))
		return s.rulesExtract(in)
	}
	return ext
}

func (s *PreferenceService) llmExtract(ctx context.Context, in ExtractionInput) (*Extraction, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExtract,
		SystemPrompt: extractSystemPrompt,
		UserPrompt:   buildExtractPrompt(in),
	})
	if err != nil {
		return nil, err
	}

	payload, err := llm.ExtractJSON[extractPayload](resp.Text, validatePayload)
	if err != nil {
		return nil, err
	}
	return s.fromPayload(payload)
}

// fromPayload converts the model's JSON into domain values, reusing the same
// parsers the rule-based path runs on raw CSV fields. A payload the parsers
// reject counts as a model failure.
func (s *PreferenceService) fromPayload(p extractPayload) (*Extraction, error) {
	days, err := importer.ParseDayList(joinList(p.PreferredDays))
	if err != nil {
		return nil, err
	}
	windows, err := importer.ParseTimeWindows(joinList(p.PreferredTimes))
	if err != nil {
		return nil, err
	}
	blocked, err := importer.ParseDates(joinList(p.UnavailableDates))
	if err != nil {
		return nil, err
	}

	ext := &Extraction{
		Location:     domain.Location(p.Location),
		Preferences:  importer.BuildPreferences(days, windows),
		BlockedDates: blocked,
		Source:       SourceLLM,
	}
	if !domain.ValidLocations[p.Location] {
		ext.Location = domain.LocationInPerson
	}
	if p.SessionDuration != nil {
		ext.DurationMin = int(*p.SessionDuration)
	}
	if p.WeeklySessions != nil {
		ext.WeeklyCount = int(*p.WeeklySessions)
	}
	return ext, nil
}

// rulesExtract parses only the structured CSV columns, ignoring free text.
// Deterministic, and the reason importer validation runs first.
func (s *PreferenceService) rulesExtract(in ExtractionInput) *Extraction {
	rec := in.Record
	days, _ := importer.ParseDayList(rec.PreferredDays)
	windows, _ := importer.ParseTimeWindows(rec.PreferredTimes)
	blocked, _ := importer.ParseDates(rec.UnavailableDates)

	ext := &Extraction{
		Location:     importer.ParseLocation(rec.Location),
		Preferences:  importer.BuildPreferences(days, windows),
		BlockedDates: blocked,
		Source:       SourceRules,
	}
	if n := atoiOrZero(rec.SessionDuration); n > 0 {
		ext.DurationMin = n
	}
	if n := atoiOrZero(rec.WeeklySessions); n > 0 {
		ext.WeeklyCount = n
	}
	return ext
}
