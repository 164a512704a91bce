package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// AnalysisRepository persists meeting analyses in Postgres
type AnalysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save upserts an analysis keyed by meeting_id, so reprocessing a meeting
// replaces its previous result.
func (r *AnalysisRepository) Save(ctx context.Context, analysis *entities.MeetingAnalysis) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "meeting_id"}},
			UpdateAll: true,
		}).
		Create(analysis).Error
}

// GetByMeetingID returns the analysis for a meeting, or nil when absent
func (r *AnalysisRepository) GetByMeetingID(ctx context.Context, meetingID string) (*entities.MeetingAnalysis, error) {
	var analysis entities.MeetingAnalysis
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		First(&analysis).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// ListRecent returns the most recently updated analyses
func (r *AnalysisRepository) ListRecent(ctx context.Context, limit int) ([]entities.MeetingAnalysis, error) {
	if limit <= 0 {
		limit = 50
	}
	var analyses []entities.MeetingAnalysis
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(limit).
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}
