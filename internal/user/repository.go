package user

import (
	"context"
	"database/sql"
	"errors"

	"mirastore-be/internal/access"
	"mirastore-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id uint) (User, error)
	ListCustomers(ctx context.Context) ([]User, error)
	UpdateCustomer(ctx context.Context, params UpdateCustomerParams) (User, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, role, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password, role, address, created_at, updated_at
	`, params.Name, params.Email, params.Password, params.Role, params.Address).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Address, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return User{}, ErrEmailExists
		}
		log.Error("db: failed to insert user",
			zap.String("email", params.Email),
			zap.Error(err),
		)
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role, address, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Address, &u.CreatedAt, &u.UpdatedAt)

	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role, address, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Address, &u.CreatedAt, &u.UpdatedAt)

	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	return u, err
}

// ListCustomers returns customer accounts only. Admins never show up in
// customer-management listings.
func (r *repository) ListCustomers(ctx context.Context) ([]User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListCustomers"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, role, address, created_at, updated_at
		FROM users
		WHERE role = $1
		ORDER BY id
	`, access.RoleCustomer)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Address, &u.CreatedAt, &u.UpdatedAt); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *repository) UpdateCustomer(ctx context.Context, params UpdateCustomerParams) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET name = $1, email = $2, updated_at = NOW()
		WHERE id = $3 AND role = $4
		RETURNING id, name, email, role, address, created_at, updated_at
	`, params.Name, params.Email, params.ID, access.RoleCustomer).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Address, &u.CreatedAt, &u.UpdatedAt)

	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}

	return u, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgForeignKeyViolation {
			return ErrCustomerHasOrders
		}
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
