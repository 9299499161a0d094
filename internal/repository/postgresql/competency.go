package postgresql

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
)

type competencyRepositoryImpl struct {
	db *database.DB
}

func NewCompetencyRepository(db *database.DB) performance.CompetencyRepository {
	return &competencyRepositoryImpl{db: db}
}

// Create implements performance.CompetencyRepository.
func (r *competencyRepositoryImpl) Create(ctx context.Context, c performance.Competency) (performance.Competency, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO competencies (name, description) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Description,
	).Scan(&c.ID)
	if err != nil {
		return performance.Competency{}, err
	}
	return c, nil
}

// List implements performance.CompetencyRepository.
func (r *competencyRepositoryImpl) List(ctx context.Context) ([]performance.Competency, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description FROM competencies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	competencies := make([]performance.Competency, 0)
	for rows.Next() {
		var c performance.Competency
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		competencies = append(competencies, c)
	}

	return competencies, nil
}

// UpsertEmployeeLevel implements performance.CompetencyRepository.
// Re-assessing overwrites the previous level for the pair.
func (r *competencyRepositoryImpl) UpsertEmployeeLevel(ctx context.Context, ec performance.EmployeeCompetency) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_competencies (employee_id, competency_id, level, note)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, competency_id) DO UPDATE
		SET level = EXCLUDED.level, note = EXCLUDED.note
	`

	_, err := q.Exec(ctx, query, ec.EmployeeID, ec.CompetencyID, ec.Level, ec.Note)
	return err
}

// ListByEmployee implements performance.CompetencyRepository.
func (r *competencyRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]performance.EmployeeCompetency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ec.employee_id, ec.competency_id, ec.level, ec.note,
			   c.name AS competency_name
		FROM employee_competencies ec
		JOIN competencies c ON ec.competency_id = c.id
		WHERE ec.employee_id = $1
		ORDER BY ec.competency_id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := make([]performance.EmployeeCompetency, 0)
	for rows.Next() {
		var ec performance.EmployeeCompetency
		if err := rows.Scan(
			&ec.EmployeeID, &ec.CompetencyID, &ec.Level, &ec.Note,
			&ec.CompetencyName,
		); err != nil {
			return nil, err
		}
		levels = append(levels, ec)
	}

	return levels, nil
}
