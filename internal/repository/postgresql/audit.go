package postgresql

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/audit"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Append implements audit.AuditRepository. Entries are insert-only;
// nothing in the schema updates or deletes them.
func (r *auditRepositoryImpl) Append(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_log (actor_user_id, action, target_type, target_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	_, err := q.Exec(ctx, query,
		entry.ActorUserID, entry.Action, entry.TargetType, entry.TargetID, entry.Detail,
	)
	return err
}

// Recent implements audit.AuditRepository.
func (r *auditRepositoryImpl) Recent(ctx context.Context, limit int) ([]audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, actor_user_id, action, target_type, target_id, detail, created_at
		FROM audit_log
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]audit.Entry, 0)
	for rows.Next() {
		var entry audit.Entry
		if err := rows.Scan(
			&entry.ID, &entry.ActorUserID, &entry.Action, &entry.TargetType,
			&entry.TargetID, &entry.Detail, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
