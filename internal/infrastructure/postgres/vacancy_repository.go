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

var _ repository.VacancyRepository = (*VacancyRepo)(nil)

// VacancyRepo implementación del puerto VacancyRepository sobre PostgreSQL.
type VacancyRepo struct {
	pool *pgxpool.Pool
}

// NewVacancyRepository construye el adaptador de persistencia para vacantes.
func NewVacancyRepository(pool *pgxpool.Pool) *VacancyRepo {
	return &VacancyRepo{pool: pool}
}

const vacancyColumns = `id, owner_id, title, description, experience, expected_salary, created_at, updated_at`

// Create persiste una nueva vacancy.
func (r *VacancyRepo) Create(ctx context.Context, v *entity.Vacancy) error {
	query := `
		INSERT INTO vacancies (` + vacancyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		v.ID, v.OwnerID, v.Title, v.Description, v.Experience,
		v.ExpectedSalary, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vacancy: %w", err)
	}
	return nil
}

// GetByID obtiene una vacancy por ID; (nil, nil) si no existe.
func (r *VacancyRepo) GetByID(ctx context.Context, id string) (*entity.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE id = $1`
	var v entity.Vacancy
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.Experience,
		&v.ExpectedSalary, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vacancy by id: %w", err)
	}
	return &v, nil
}

// GetAll lista todas las vacantes.
func (r *VacancyRepo) GetAll(ctx context.Context) ([]*entity.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	return scanVacancies(rows)
}

// GetByOwner lista las vacantes de un dueño (visibilidad acotada del employer).
func (r *VacancyRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entity.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list vacancies by owner: %w", err)
	}
	return scanVacancies(rows)
}

func scanVacancies(rows pgx.Rows) ([]*entity.Vacancy, error) {
	defer rows.Close()
	var list []*entity.Vacancy
	for rows.Next() {
		var v entity.Vacancy
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.Experience,
			&v.ExpectedSalary, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vacancy: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza una vacancy (owner_id nunca cambia).
func (r *VacancyRepo) Update(ctx context.Context, v *entity.Vacancy) error {
	query := `
		UPDATE vacancies SET title = $2, description = $3, experience = $4,
			expected_salary = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Title, v.Description, v.Experience, v.ExpectedSalary, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vacancy: %w", err)
	}
	return nil
}

// Delete elimina una vacancy por ID; sus links caen por la FK ON DELETE CASCADE.
func (r *VacancyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vacancy: %w", err)
	}
	return nil
}
