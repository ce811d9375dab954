package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/empleos-api/internal/domain/entity"
	"github.com/jhoicas/empleos-api/internal/domain/repository"
)

var _ repository.ResumeRepository = (*ResumeRepo)(nil)

// ResumeRepo implementación del puerto ResumeRepository sobre PostgreSQL.
type ResumeRepo struct {
	pool *pgxpool.Pool
}

// NewResumeRepository construye el adaptador de persistencia para resumes.
func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

const resumeColumns = `id, owner_id, title, description, experience, expected_salary, created_at, updated_at`

// Create persiste un nuevo resume.
func (r *ResumeRepo) Create(ctx context.Context, res *entity.Resume) error {
	query := `
		INSERT INTO resumes (` + resumeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		res.ID, res.OwnerID, res.Title, res.Description, res.Experience,
		res.ExpectedSalary, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

// GetByID obtiene un resume por ID; (nil, nil) si no existe.
func (r *ResumeRepo) GetByID(ctx context.Context, id string) (*entity.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	var res entity.Resume
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.OwnerID, &res.Title, &res.Description, &res.Experience,
		&res.ExpectedSalary, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resume by id: %w", err)
	}
	return &res, nil
}

// GetAll lista todos los resumes.
func (r *ResumeRepo) GetAll(ctx context.Context) ([]*entity.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	return scanResumes(rows)
}

// GetByOwner lista los resumes de un dueño (visibilidad acotada del worker).
func (r *ResumeRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entity.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list resumes by owner: %w", err)
	}
	return scanResumes(rows)
}

func scanResumes(rows pgx.Rows) ([]*entity.Resume, error) {
	defer rows.Close()
	var list []*entity.Resume
	for rows.Next() {
		var res entity.Resume
		if err := rows.Scan(
			&res.ID, &res.OwnerID, &res.Title, &res.Description, &res.Experience,
			&res.ExpectedSalary, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// Update actualiza un resume (owner_id nunca cambia).
func (r *ResumeRepo) Update(ctx context.Context, res *entity.Resume) error {
	query := `
		UPDATE resumes SET title = $2, description = $3, experience = $4,
			expected_salary = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		res.ID, res.Title, res.Description, res.Experience, res.ExpectedSalary, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	return nil
}

// Delete elimina un resume por ID; sus links caen por la FK ON DELETE CASCADE.
func (r *ResumeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	return nil
}
