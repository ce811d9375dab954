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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create persiste una nueva cuenta. El índice único de display_name se
// traduce a ErrDuplicateName.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `
		INSERT INTO accounts (id, display_name, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.DisplayName, a.PasswordHash, string(a.Role), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID; (nil, nil) si no existe.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByDisplayName obtiene una cuenta por display name; (nil, nil) si no existe.
func (r *AccountRepo) GetByDisplayName(ctx context.Context, name string) (*entity.Account, error) {
	return r.getOne(ctx, `WHERE display_name = $1`, name)
}

func (r *AccountRepo) getOne(ctx context.Context, where string, arg any) (*entity.Account, error) {
	query := `
		SELECT id, display_name, password_hash, role, created_at, updated_at
		FROM accounts ` + where
	var a entity.Account
	var role string
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.DisplayName, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	a.Role = entity.Role(role)
	return &a, nil
}

// GetAll lista todas las cuentas.
func (r *AccountRepo) GetAll(ctx context.Context) ([]*entity.Account, error) {
	query := `
		SELECT id, display_name, password_hash, role, created_at, updated_at
		FROM accounts ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		var role string
		if err := rows.Scan(&a.ID, &a.DisplayName, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.Role = entity.Role(role)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza una cuenta.
func (r *AccountRepo) Update(ctx context.Context, a *entity.Account) error {
	query := `
		UPDATE accounts SET display_name = $2, password_hash = $3, role = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.DisplayName, a.PasswordHash, string(a.Role), a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Delete elimina una cuenta por ID. Sus resumes y vacantes (y los links de
// estos) caen por las FK ON DELETE CASCADE.
func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
