package models

import "encoding/json"

// AnalysisResult is the structured feedback returned by the analysis service
// for one résumé. Every field is optional on the wire; absent fields keep the
// defaults from DefaultAnalysisResult.
type AnalysisResult struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	CoreSkills         []string `json:"core_skills"`
	SoftSkills         []string `json:"soft_skills"`
	ResumeRating       int      `json:"resume_rating"`
	ImprovementAreas   string   `json:"improvement_areas"`
	UpskillSuggestions string   `json:"upskill_suggestions"`
}

// DefaultAnalysisResult returns the all-default result: empty identity fields,
// empty skill lists, rating 0.
func DefaultAnalysisResult() AnalysisResult {
	return AnalysisResult{
		CoreSkills: []string{},
		SoftSkills: []string{},
	}
}

// AnalysisEnvelope is the top-level response shape of the analysis service.
// When Status is "error", Error carries a human-readable message and Data is
// not consumed. Otherwise Data holds the analysis payload.
type AnalysisEnvelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

// StatusError is the envelope status value that signals a service-side failure.
const StatusError = "error"

// MergeResult decodes data over a fresh default result, so fields missing from
// the payload keep their defaults and unknown fields are ignored.
func MergeResult(data json.RawMessage) (AnalysisResult, error) {
	result := DefaultAnalysisResult()
	if len(data) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return DefaultAnalysisResult(), err
	}
	return result, nil
}
