package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeData_DocumentRoundTrip(t *testing.T) {
	original := NewResumeData("auth0|user-123")
	original.PersonalInfo = PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com", Location: "Colombo"}
	original.SocialLinks = SocialLinks{GitHub: "https://github.com/janedoe"}
	original.WorkExperiences = []WorkExperience{{
		ID:               "we-1",
		Company:          "Acme",
		Position:         "Engineer",
		StartDate:        "2021-03",
		CurrentlyWorking: true,
		Responsibilities: []string{"Built the platform"},
	}}
	original.Education = []Education{{ID: "ed-1", Institution: "University of Colombo", Degree: "BSc"}}
	original.Projects = []Project{{ID: "pr-1", Name: "Toolkit", Technologies: []string{"Go"}}}
	original.Skills = Skills{Position: "Engineer", SelectedSkills: []string{"Go", "SQL"}}

	// The storage layer persists the document as JSON; a save-then-load must
	// reproduce the structure exactly.
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var loaded ResumeData
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.Equal(t, *original, loaded)
}

func TestNewResumeData_InitializesLists(t *testing.T) {
	resume := NewResumeData("u1")

	raw, err := json.Marshal(resume)
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"workExperiences":[]`)
	assert.Contains(t, body, `"education":[]`)
	assert.Contains(t, body, `"projects":[]`)
	assert.Contains(t, body, `"selectedSkills":[]`)
}

func TestEmailStatus_Scan(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected EmailStatus
		wantErr  bool
	}{
		{name: "Sent", input: "sent", expected: EmailStatusSent},
		{name: "Pending as bytes", input: []byte("pending"), expected: EmailStatusPending},
		{name: "Failed", input: "failed", expected: EmailStatusFailed},
		{name: "Unknown value", input: "bounced", wantErr: true},
		{name: "Wrong type", input: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var status EmailStatus
			err := status.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}
