package models

import (
	"encoding/json"
	"testing"
)

func TestDefaultAnalysisResult(t *testing.T) {
	result := DefaultAnalysisResult()

	if result.Name != "" || result.Email != "" {
		t.Errorf("Expected empty identity fields, got name=%q email=%q", result.Name, result.Email)
	}

	if result.ResumeRating != 0 {
		t.Errorf("Expected rating 0, got %d", result.ResumeRating)
	}

	if result.CoreSkills == nil || len(result.CoreSkills) != 0 {
		t.Errorf("Expected empty core skills slice, got %v", result.CoreSkills)
	}

	if result.SoftSkills == nil || len(result.SoftSkills) != 0 {
		t.Errorf("Expected empty soft skills slice, got %v", result.SoftSkills)
	}
}

func TestMergeResultKeepsDefaultsForMissingFields(t *testing.T) {
	data := json.RawMessage(`{"name":"Jane Doe","resume_rating":7}`)

	result, err := MergeResult(data)
	if err != nil {
		t.Fatalf("MergeResult failed: %v", err)
	}

	if result.Name != "Jane Doe" {
		t.Errorf("Expected name 'Jane Doe', got %q", result.Name)
	}

	if result.ResumeRating != 7 {
		t.Errorf("Expected rating 7, got %d", result.ResumeRating)
	}

	if result.Email != "" {
		t.Errorf("Expected default email, got %q", result.Email)
	}

	if len(result.CoreSkills) != 0 {
		t.Errorf("Expected default core skills, got %v", result.CoreSkills)
	}
}

func TestMergeResultIgnoresUnknownFields(t *testing.T) {
	data := json.RawMessage(`{"name":"Jane","confidence":0.93,"extra":{"nested":true}}`)

	result, err := MergeResult(data)
	if err != nil {
		t.Fatalf("MergeResult failed: %v", err)
	}

	if result.Name != "Jane" {
		t.Errorf("Expected name 'Jane', got %q", result.Name)
	}
}

func TestMergeResultEmptyPayload(t *testing.T) {
	result, err := MergeResult(nil)
	if err != nil {
		t.Fatalf("MergeResult failed on empty payload: %v", err)
	}

	if result.ResumeRating != 0 || result.Name != "" {
		t.Errorf("Expected all-default result, got %+v", result)
	}
}

func TestMergeResultMalformedPayload(t *testing.T) {
	_, err := MergeResult(json.RawMessage(`{"name":`))
	if err == nil {
		t.Fatal("Expected error for malformed payload")
	}
}

func TestAnalysisEnvelopeDecoding(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus string
		wantError  string
		wantData   bool
	}{
		{
			name:       "Success envelope",
			body:       `{"status":"success","data":{"name":"Jane"}}`,
			wantStatus: "success",
			wantData:   true,
		},
		{
			name:       "Error envelope",
			body:       `{"status":"error","error":"could not read resume"}`,
			wantStatus: "error",
			wantError:  "could not read resume",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var envelope AnalysisEnvelope
			if err := json.Unmarshal([]byte(tt.body), &envelope); err != nil {
				t.Fatalf("Failed to decode envelope: %v", err)
			}

			if envelope.Status != tt.wantStatus {
				t.Errorf("Expected status %q, got %q", tt.wantStatus, envelope.Status)
			}

			if envelope.Error != tt.wantError {
				t.Errorf("Expected error %q, got %q", tt.wantError, envelope.Error)
			}

			if tt.wantData != (len(envelope.Data) > 0) {
				t.Errorf("Data presence mismatch: %s", envelope.Data)
			}
		})
	}
}
