package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/notify"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func recipientScope(r domain.Recipient) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if r.Kind == domain.RecipientEmployee {
			return q.Where("employee_id = ?", r.ID)
		}
		return q.Where("user_id = ?", r.ID)
	}
}

func (r *NotificationGormRepository) SaveNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationGormRepository) ListNotifications(
	ctx context.Context,
	rcpt domain.Recipient,
	limit int,
) ([]models.Notification, error) {

	var list []models.Notification
	if err := r.db.WithContext(ctx).
		Scopes(recipientScope(rcpt)).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

func (r *NotificationGormRepository) GetNotification(
	ctx context.Context,
	id uint,
) (*models.Notification, error) {

	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &n, nil
}

func (r *NotificationGormRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *NotificationGormRepository) MarkAllRead(
	ctx context.Context,
	rcpt domain.Recipient,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Scopes(recipientScope(rcpt)).
		Where("is_read = ?", false).
		Update("is_read", true)

	return res.RowsAffected, res.Error
}

var _ notify.Store = (*NotificationGormRepository)(nil)
