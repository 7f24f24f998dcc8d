package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// --- Email Status Enum ---
type EmailStatus string

const (
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusPending EmailStatus = "pending"
	EmailStatusFailed  EmailStatus = "failed"
)

// Scan implements the sql.Scanner interface for EmailStatus
func (es *EmailStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan EmailStatus: value is not string or []byte")
		}
	}
	v := EmailStatus(strVal)
	switch v {
	case EmailStatusSent, EmailStatusPending, EmailStatusFailed:
		*es = v
		return nil
	default:
		return fmt.Errorf("invalid EmailStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for EmailStatus
func (es EmailStatus) Value() (driver.Value, error) {
	return string(es), nil
}

// PersonalInfo holds the free-text contact section of a resume. All fields
// are optional; the template generator substitutes placeholders for blanks.
type PersonalInfo struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// SocialLinks holds optional profile URLs rendered into email signatures.
type SocialLinks struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
	Other     string `json:"other,omitempty"`
}

// Education is embedded in the resume document and has no identity outside it.
type Education struct {
	ID                string   `json:"id"`
	Institution       string   `json:"institution"`
	Degree            string   `json:"degree"`
	FieldOfStudy      string   `json:"fieldOfStudy"`
	Location          string   `json:"location"`
	Country           string   `json:"country,omitempty"`
	Domain            string   `json:"domain,omitempty"` // institution logo lookup only
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	CurrentlyStudying bool     `json:"currentlyStudying"`
	GPA               string   `json:"gpa,omitempty"`
	Achievements      []string `json:"achievements"`
}

// WorkExperience is embedded in the resume document.
type WorkExperience struct {
	ID               string   `json:"id"`
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	CurrentlyWorking bool     `json:"currentlyWorking"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

// Project is embedded in the resume document.
type Project struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	Technologies     []string `json:"technologies"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	CurrentlyWorking bool     `json:"currentlyWorking"`
	Description      string   `json:"description"`
	KeyFeatures      []string `json:"keyFeatures"`
	ProjectURL       string   `json:"projectUrl,omitempty"`
	GitHubURL        string   `json:"githubUrl,omitempty"`
}

// Skills holds the target position and the selected skill list. The 50-skill
// cap is advisory and enforced at the edge, not here.
type Skills struct {
	Position       string   `json:"position"`
	SelectedSkills []string `json:"selectedSkills"`
}

// ResumeData is the aggregate root: one document per userId, overwritten
// wholesale on every save. Last write wins; there is no field-level merge.
type ResumeData struct {
	UserID          string           `json:"userId"`
	PersonalInfo    PersonalInfo     `json:"personalInfo"`
	SocialLinks     SocialLinks      `json:"socialLinks"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Education       []Education      `json:"education"`
	Projects        []Project        `json:"projects"`
	Skills          Skills           `json:"skills"`
	LastUpdated     time.Time        `json:"lastUpdated"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// NewResumeData returns an empty resume document with all lists initialized,
// so JSON round-trips produce [] instead of null.
func NewResumeData(userID string) *ResumeData {
	return &ResumeData{
		UserID:          userID,
		WorkExperiences: []WorkExperience{},
		Education:       []Education{},
		Projects:        []Project{},
		Skills:          Skills{SelectedSkills: []string{}},
	}
}

// Attachments records the filenames attached to a sent email. Contents are
// never persisted, only names for the history view.
type Attachments struct {
	CV          string `json:"cv"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// EmailHistory is an immutable record of one send attempt. Many entries per
// user, independent of the resume document's lifecycle.
type EmailHistory struct {
	ID             string      `json:"id" db:"id"`
	UserID         string      `json:"userId" db:"user_id"`
	CompanyName    string      `json:"companyName" db:"company_name"`
	Position       string      `json:"position" db:"position"`
	RecipientEmail string      `json:"recipientEmail" db:"recipient_email"`
	TemplateID     int         `json:"templateId" db:"template_id"`
	TemplateName   string      `json:"templateName" db:"template_name"`
	SentDate       time.Time   `json:"sentDate" db:"sent_date"`
	Status         EmailStatus `json:"status" db:"status"`
	Attachments    Attachments `json:"attachments"`
	EmailSubject   string      `json:"emailSubject" db:"email_subject"`
	EmailPreview   string      `json:"emailPreview" db:"email_preview"`
}
