package models

import "time"

// ApplicantRecord is one persisted form submission. Records are append-only:
// nothing in the application updates or deletes a row once it is inserted.
type ApplicantRecord struct {
	ID              int64     `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	Zip             string    `json:"zip"`
	Cellphone       string    `json:"cellphone"`
	Email           string    `json:"email"`
	LicensedAgent   bool      `json:"licensed_agent"`
	YearsExperience string    `json:"years_experience"`

	// ResumePath and ResumeOriginalName are both empty or both set,
	// never one without the other.
	ResumePath         string `json:"resume_path,omitempty"`
	ResumeOriginalName string `json:"resume_original_name,omitempty"`

	DisclaimerChecked bool `json:"disclaimer_checked"`
}

// HasResume reports whether a resume file was stored with this record.
func (r ApplicantRecord) HasResume() bool {
	return r.ResumePath != ""
}
