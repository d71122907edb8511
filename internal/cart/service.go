package cart

import (
	"context"

	"mirastore-be/internal/access"
	"mirastore-be/internal/product"
)

// Service defines the business logic for carts. Every call takes the
// request identity; entries are only ever visible to their owner.
type Service interface {
	AddItem(ctx context.Context, ident access.Identity, productID uint) (*Entry, error)
	UpdateQuantity(ctx context.Context, ident access.Identity, entryID uint, quantity int) (*Entry, error)
	RemoveItem(ctx context.Context, ident access.Identity, entryID uint) error
	ListForUser(ctx context.Context, ident access.Identity) ([]Entry, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// AddItem puts one unit of the product into the user's cart. A repeat add
// bumps the existing entry's quantity instead of creating a second row.
func (s *service) AddItem(ctx context.Context, ident access.Identity, productID uint) (*Entry, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByUserAndProduct(ctx, ident.UserID, productID)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		return s.repo.Create(ctx, ident.UserID, productID, 1)
	}

	return s.repo.UpdateQuantity(ctx, entry.ID, entry.Quantity+1)
}

func (s *service) UpdateQuantity(ctx context.Context, ident access.Identity, entryID uint, quantity int) (*Entry, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	if entry.UserID != ident.UserID {
		return nil, ErrForbidden
	}

	return s.repo.UpdateQuantity(ctx, entryID, quantity)
}

// RemoveItem deletes the entry. Deleting an entry that is already gone is
// not an error.
func (s *service) RemoveItem(ctx context.Context, ident access.Identity, entryID uint) error {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}
	if entry.UserID != ident.UserID {
		return ErrForbidden
	}

	return s.repo.Remove(ctx, entryID)
}

func (s *service) ListForUser(ctx context.Context, ident access.Identity) ([]Entry, error) {
	return s.repo.ListForUser(ctx, ident.UserID)
}
