package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fadilmartias/skill-verifier/internal/model"
)

// AssessmentRepository mirrors assessment outcomes to Postgres. All writes
// are upserts keyed by the external test/session id, so replays and
// resubmissions stay idempotent.
type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db}
}

// SaveClaimTest records a freshly generated test ("pending" until graded).
func (r *AssessmentRepository) SaveClaimTest(assessment *model.CandidateAssessment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "test_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"claimed_skills", "claim_status", "updated_at",
		}),
	}).Create(assessment).Error
}

// SaveClaimResult records a grading outcome. Claimed skills are left
// untouched; they were written at generation time.
func (r *AssessmentRepository) SaveClaimResult(assessment *model.CandidateAssessment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "test_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"claim_status", "authenticity_score", "shortlist", "updated_at",
		}),
	}).Create(assessment).Error
}

func (r *AssessmentRepository) SaveInterview(record *model.InterviewRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"company_id", "overall_score", "recommendation", "round_breakdown", "updated_at",
		}),
	}).Create(record).Error
}
