package types

// Decision is the discrete outcome band derived from the overall score.
type Decision string

// Decision bands: proceed >= 75, maybe 50-74, reject < 50.
const (
	DecisionProceed Decision = "proceed"
	DecisionMaybe   Decision = "maybe"
	DecisionReject  Decision = "reject"
)

// Evidence is a short supporting quote attached to a scored dimension.
// Evidence values are immutable once created.
type Evidence struct {
	Source string `json:"source" validate:"omitempty,oneof=candidate job company"`
	Quote  string `json:"quote"`
	Field  string `json:"field"`
}

// SubScores holds the five dimension subscores, each in [0,100].
type SubScores struct {
	Skills     int `json:"skills" validate:"gte=0,lte=100"`
	Experience int `json:"experience" validate:"gte=0,lte=100"`
	Culture    int `json:"culture" validate:"gte=0,lte=100"`
	Domain     int `json:"domain" validate:"gte=0,lte=100"`
	Logistics  int `json:"logistics" validate:"gte=0,lte=100"`
}

// ScoreCard is the engine's complete output for one evaluation.
type ScoreCard struct {
	OverallScore  int        `json:"overall_score" validate:"gte=0,lte=100"`
	SubScores     SubScores  `json:"sub_scores"`
	Decision      Decision   `json:"decision" validate:"oneof=proceed maybe reject"`
	Justification string     `json:"justification"`
	Reasons       []string   `json:"reasons"`
	MissingData   []string   `json:"missing_data"`
	Evidence      []Evidence `json:"evidence"`
}
