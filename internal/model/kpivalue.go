package model

import (
	"encoding/json"
	"fmt"
)

// KPI names used as persistence keys. Each name maps to at most one live
// value at a time; last write wins.
const (
	KPITurnoverRate          = "turnoverRate"
	KPITimeToFill            = "timeToFill"
	KPIEngagementScore       = "engagementScore"
	KPIDiversityIndex        = "diversityIndex"
	KPIDiversityBreakdowns   = "diversityBreakdowns"
	KPIAITraining            = "aiTraining"
	KPITalentDevelopment     = "talentDevelopment"
	KPITotalLinkedInLicenses = "totalLinkedInLicenses"
	KPITotalActiveEmployees  = "totalActiveEmployees"
	KPILinkedInEngagement    = "linkedinEngagement"
	KPIBotnosticSolutions    = "botnosticSolutions"
)

// ValueKind discriminates the shape of a computed KPI value.
type ValueKind int

const (
	ValueScalar ValueKind = iota
	ValueDiversity
	ValueAITraining
	ValueEngagement
	ValueBotnostic
)

// DiversityBreakdowns carries the per-bucket percentage split of each
// diversity dimension, for display.
type DiversityBreakdowns struct {
	Gender   map[string]float64 `json:"gender"`
	Age      map[string]float64 `json:"age"`
	Religion map[string]float64 `json:"religion"`
}

// AITrainingStats is the composite AI Training result.
type AITrainingStats struct {
	Percentage           float64 `json:"percentage"`
	TotalLearners        int     `json:"totalLearners"`
	AITrained            int     `json:"aiTrained"`
	TotalActiveEmployees int     `json:"totalActiveEmployees,omitempty"`
}

// LinkedInEngagement accumulates the three page metrics. Fields are
// pointers so each of the three source files can populate its metric
// without erasing the others.
type LinkedInEngagement struct {
	Followers   *float64 `json:"followers,omitempty"`
	PageViews   *float64 `json:"pageViews,omitempty"`
	Impressions *float64 `json:"impressions,omitempty"`
}

// Merge copies the set fields of other onto e, preserving fields other
// leaves unset.
func (e *LinkedInEngagement) Merge(other LinkedInEngagement) {
	if other.Followers != nil {
		e.Followers = other.Followers
	}
	if other.PageViews != nil {
		e.PageViews = other.PageViews
	}
	if other.Impressions != nil {
		e.Impressions = other.Impressions
	}
}

// BotnosticStats is the Botnostic platform participation triple.
type BotnosticStats struct {
	AssessmentGiven int `json:"assessmentGiven"`
	LoggedIn        int `json:"loggedIn"`
	TrainingStarted int `json:"trainingStarted"`
}

// KPIValue is a live computed KPI result: either a plain number or one of
// the composite shapes, selected by Kind.
type KPIValue struct {
	Kind       ValueKind
	Scalar     float64
	Diversity  *DiversityBreakdowns
	AITraining *AITrainingStats
	Engagement *LinkedInEngagement
	Botnostic  *BotnosticStats
}

// ScalarValue wraps a plain numeric KPI value.
func ScalarValue(v float64) KPIValue {
	return KPIValue{Kind: ValueScalar, Scalar: v}
}

// IsScalar reports whether the value is a plain number.
func (v KPIValue) IsScalar() bool {
	return v.Kind == ValueScalar
}

// Metadata returns the structured payload for composite values, or nil
// for scalars.
func (v KPIValue) Metadata() any {
	switch v.Kind {
	case ValueDiversity:
		return v.Diversity
	case ValueAITraining:
		return v.AITraining
	case ValueEngagement:
		return v.Engagement
	case ValueBotnostic:
		return v.Botnostic
	default:
		return nil
	}
}

// MarshalMetadata serializes the structured payload for the metadata
// column, or returns nil for scalar values.
func (v KPIValue) MarshalMetadata() ([]byte, error) {
	m := v.Metadata()
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// KPIValueFromRecord rebuilds a KPIValue from the persisted pair of
// numeric value and metadata JSON, using the KPI name to pick the shape.
func KPIValueFromRecord(name string, numeric *float64, metadata []byte) (KPIValue, error) {
	switch name {
	case KPIDiversityBreakdowns:
		var d DiversityBreakdowns
		if err := json.Unmarshal(metadata, &d); err != nil {
			return KPIValue{}, fmt.Errorf("decode %s metadata: %w", name, err)
		}
		return KPIValue{Kind: ValueDiversity, Diversity: &d}, nil
	case KPIAITraining:
		var s AITrainingStats
		if err := json.Unmarshal(metadata, &s); err != nil {
			return KPIValue{}, fmt.Errorf("decode %s metadata: %w", name, err)
		}
		return KPIValue{Kind: ValueAITraining, AITraining: &s}, nil
	case KPILinkedInEngagement:
		var e LinkedInEngagement
		if err := json.Unmarshal(metadata, &e); err != nil {
			return KPIValue{}, fmt.Errorf("decode %s metadata: %w", name, err)
		}
		return KPIValue{Kind: ValueEngagement, Engagement: &e}, nil
	case KPIBotnosticSolutions:
		var b BotnosticStats
		if err := json.Unmarshal(metadata, &b); err != nil {
			return KPIValue{}, fmt.Errorf("decode %s metadata: %w", name, err)
		}
		return KPIValue{Kind: ValueBotnostic, Botnostic: &b}, nil
	default:
		if numeric == nil {
			return KPIValue{}, fmt.Errorf("kpi %s has no numeric value", name)
		}
		return ScalarValue(*numeric), nil
	}
}
