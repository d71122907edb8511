package user

import (
	"context"
	"fmt"

	"mirastore-be/internal/access"
	"mirastore-be/internal/logger"

	"go.uber.org/zap"
)

// defaultCustomerPassword is the initial password for admin-created
// customer accounts until the customer changes it.
const defaultCustomerPassword = "password123"

type Service interface {
	Register(ctx context.Context, name, email, password string) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByID(ctx context.Context, id uint) (User, error)

	ListCustomers(ctx context.Context) ([]User, error)
	CreateCustomer(ctx context.Context, name, email string) (User, error)
	UpdateCustomer(ctx context.Context, params UpdateCustomerParams) (User, error)
	DeleteCustomer(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, CreateUserParams{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     access.RoleCustomer,
	})
	if err != nil {
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, u.Role, email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	log.Info("register service completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Role, email)
	return token, u, err
}

func (s *service) GetByID(ctx context.Context, id uint) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListCustomers(ctx context.Context) ([]User, error) {
	return s.repo.ListCustomers(ctx)
}

// CreateCustomer provisions a customer account from the admin back-office
// with the default password.
func (s *service) CreateCustomer(ctx context.Context, name, email string) (User, error) {
	hashed, err := HashPassword(defaultCustomerPassword)
	if err != nil {
		return User{}, err
	}

	return s.repo.Create(ctx, CreateUserParams{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     access.RoleCustomer,
	})
}

func (s *service) UpdateCustomer(ctx context.Context, params UpdateCustomerParams) (User, error) {
	return s.repo.UpdateCustomer(ctx, params)
}

func (s *service) DeleteCustomer(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
