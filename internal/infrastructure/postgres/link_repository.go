package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/empleos-api/internal/domain"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
	"github.com/jhoicas/empleos-api/internal/domain/repository"
)

var _ repository.LinkRepository = (*LinkRepo)(nil)

// LinkRepo implementación del puerto LinkRepository sobre PostgreSQL.
//
// La tabla links tiene UNIQUE (resume_id, vacancy_id): bajo peticiones
// concurrentes idénticas el índice decide quién gana, y la 23505 se traduce
// a domain.ErrConflict.
type LinkRepo struct {
	pool *pgxpool.Pool
}

// NewLinkRepository construye el adaptador de persistencia para links.
func NewLinkRepository(pool *pgxpool.Pool) *LinkRepo {
	return &LinkRepo{pool: pool}
}

// Create persiste un nuevo link. Un par duplicado devuelve ErrConflict.
func (r *LinkRepo) Create(ctx context.Context, l *entity.Link) error {
	query := `
		INSERT INTO links (id, resume_id, vacancy_id, submitted_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, l.ID, l.ResumeID, l.VacancyID, l.SubmittedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

// GetByID obtiene un link por ID; (nil, nil) si no existe.
func (r *LinkRepo) GetByID(ctx context.Context, id string) (*entity.Link, error) {
	query := `SELECT id, resume_id, vacancy_id, submitted_at FROM links WHERE id = $1`
	var l entity.Link
	err := r.pool.QueryRow(ctx, query, id).Scan(&l.ID, &l.ResumeID, &l.VacancyID, &l.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get link by id: %w", err)
	}
	return &l, nil
}

// GetAll lista todos los links.
func (r *LinkRepo) GetAll(ctx context.Context) ([]*entity.Link, error) {
	return r.list(ctx, `SELECT id, resume_id, vacancy_id, submitted_at FROM links ORDER BY submitted_at DESC`)
}

// GetByResumeID lista los links de un resume.
func (r *LinkRepo) GetByResumeID(ctx context.Context, resumeID string) ([]*entity.Link, error) {
	return r.list(ctx,
		`SELECT id, resume_id, vacancy_id, submitted_at FROM links WHERE resume_id = $1 ORDER BY submitted_at DESC`,
		resumeID)
}

// GetByVacancyID lista los links de una vacancy.
func (r *LinkRepo) GetByVacancyID(ctx context.Context, vacancyID string) ([]*entity.Link, error) {
	return r.list(ctx,
		`SELECT id, resume_id, vacancy_id, submitted_at FROM links WHERE vacancy_id = $1 ORDER BY submitted_at DESC`,
		vacancyID)
}

func (r *LinkRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Link, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()
	var list []*entity.Link
	for rows.Next() {
		var l entity.Link
		if err := rows.Scan(&l.ID, &l.ResumeID, &l.VacancyID, &l.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ExistsByPair reporta si hay un link para el par (resume_id, vacancy_id).
// La clave es compuesta, por eso el probe va contra el par completo.
func (r *LinkRepo) ExistsByPair(ctx context.Context, resumeID, vacancyID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM links WHERE resume_id = $1 AND vacancy_id = $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, resumeID, vacancyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("link exists: %w", err)
	}
	return exists, nil
}

// Delete elimina un link por ID.
func (r *LinkRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	return nil
}
