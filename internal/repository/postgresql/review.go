package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

// Create implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, review performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reviews (employee_id, reviewer_id, period, category, score, comment, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, submitted_at
	`

	err := q.QueryRow(ctx, query,
		review.EmployeeID, review.ReviewerID, review.Period, review.Category,
		review.Score, review.Comment,
	).Scan(&review.ID, &review.SubmittedAt)
	if err != nil {
		return performance.Review{}, err
	}
	return review, nil
}

// List implements performance.ReviewRepository. Reviews carry no stage
// pair, so HR's manager-approved narrowing does not apply here; only
// the department and own-records scopes do.
func (r *reviewRepositoryImpl) List(ctx context.Context, vis user.Visibility, period *string) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rv.id, rv.employee_id, rv.reviewer_id, rv.period, rv.category,
			   rv.score, rv.comment, rv.submitted_at
		FROM reviews rv
		JOIN employees e ON rv.employee_id = e.id
	`

	clauses := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)
	if vis.EmployeeID != nil {
		args = append(args, *vis.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("rv.employee_id = $%d", len(args)))
	}
	if vis.DepartmentID != nil {
		args = append(args, *vis.DepartmentID)
		clauses = append(clauses, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if period != nil {
		args = append(args, *period)
		clauses = append(clauses, fmt.Sprintf("rv.period = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY rv.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]performance.Review, 0)
	for rows.Next() {
		var review performance.Review
		if err := rows.Scan(
			&review.ID, &review.EmployeeID, &review.ReviewerID, &review.Period, &review.Category,
			&review.Score, &review.Comment, &review.SubmittedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

// ScoreAverages implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ScoreAverages(ctx context.Context, period *string) ([]performance.EmployeeAverage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, AVG(score), COUNT(*)
		FROM reviews
	`
	args := make([]interface{}, 0, 1)
	if period != nil {
		args = append(args, *period)
		query += " WHERE period = $1"
	}
	query += `
		GROUP BY employee_id
		ORDER BY MIN(id)
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make([]performance.EmployeeAverage, 0)
	for rows.Next() {
		var avg performance.EmployeeAverage
		if err := rows.Scan(&avg.EmployeeID, &avg.Average, &avg.Count); err != nil {
			return nil, err
		}
		averages = append(averages, avg)
	}

	return averages, nil
}
