package postgresql

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
)

type feedbackRepositoryImpl struct {
	db *database.DB
}

func NewFeedbackRepository(db *database.DB) performance.FeedbackRepository {
	return &feedbackRepositoryImpl{db: db}
}

// Create implements performance.FeedbackRepository.
func (r *feedbackRepositoryImpl) Create(ctx context.Context, f performance.Feedback) (performance.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO feedback (from_user_id, to_user_id, comment, visibility, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		f.FromUserID, f.ToUserID, f.Comment, f.Visibility,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return performance.Feedback{}, err
	}
	return f, nil
}

// ListReceived implements performance.FeedbackRepository.
func (r *feedbackRepositoryImpl) ListReceived(ctx context.Context, toUserID int64) ([]performance.Feedback, error) {
	return r.list(ctx, `to_user_id`, toUserID)
}

// ListGiven implements performance.FeedbackRepository.
func (r *feedbackRepositoryImpl) ListGiven(ctx context.Context, fromUserID int64) ([]performance.Feedback, error) {
	return r.list(ctx, `from_user_id`, fromUserID)
}

func (r *feedbackRepositoryImpl) list(ctx context.Context, column string, userID int64) ([]performance.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, from_user_id, to_user_id, comment, visibility, created_at
		FROM feedback
		WHERE ` + column + ` = $1
		ORDER BY id DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]performance.Feedback, 0)
	for rows.Next() {
		var f performance.Feedback
		if err := rows.Scan(
			&f.ID, &f.FromUserID, &f.ToUserID, &f.Comment, &f.Visibility, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, f)
	}

	return entries, nil
}
