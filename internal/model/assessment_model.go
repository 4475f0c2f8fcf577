package model

import (
	"time"

	"github.com/google/uuid"
)

// CandidateAssessment mirrors a claim test's lifecycle to Postgres when a
// database is configured. The in-memory store stays the source of truth
// for grading; these rows exist for reporting and recovery.
type CandidateAssessment struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TestID            string    `gorm:"type:varchar(64);uniqueIndex" json:"test_id"`
	ClaimedSkills     string    `gorm:"type:jsonb" json:"claimed_skills"`
	ClaimStatus       string    `gorm:"type:varchar(50)" json:"claim_status"` // "pending" until first submission
	AuthenticityScore int       `json:"authenticity_score"`
	Shortlist         string    `gorm:"type:jsonb" json:"shortlist"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type InterviewRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID      string    `gorm:"type:varchar(64);uniqueIndex" json:"session_id"`
	CompanyID      string    `gorm:"type:varchar(64)" json:"company_id"`
	OverallScore   int       `json:"overall_score"`
	Recommendation string    `gorm:"type:text" json:"recommendation"`
	RoundBreakdown string    `gorm:"type:jsonb" json:"round_breakdown"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
