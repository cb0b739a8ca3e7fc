package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/db"
)

type ChatRequestRepository struct {
	db *gorm.DB
}

func NewChatRequestRepository(database *gorm.DB) *ChatRequestRepository {
	return &ChatRequestRepository{db: database}
}

// FindActiveBetween returns pending or accepted requests between the
// unordered pair, newest first.
func (r *ChatRequestRepository) FindActiveBetween(ctx context.Context, userA, userB string) ([]db.ChatRequest, error) {
	var rows []db.ChatRequest
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userA, userB, userB, userA).
		Where("status IN ?", []string{db.ChatRequestPending, db.ChatRequestAccepted}).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *ChatRequestRepository) Create(ctx context.Context, req db.ChatRequest) error {
	return r.db.WithContext(ctx).Create(&req).Error
}

// Get fails with gorm.ErrRecordNotFound for unknown ids.
func (r *ChatRequestRepository) Get(ctx context.Context, id string) (db.ChatRequest, error) {
	var req db.ChatRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	return req, err
}

// Transition is a compare-and-set on status, so two concurrent responses
// cannot both apply.
func (r *ChatRequestRepository) Transition(ctx context.Context, id, from, to string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.ChatRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListIncoming returns pending requests addressed to receiverID, newest first.
func (r *ChatRequestRepository) ListIncoming(ctx context.Context, receiverID string, limit int) ([]db.ChatRequest, error) {
	var rows []db.ChatRequest
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", receiverID, db.ChatRequestPending).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
