// Package services holds the marketplace operations sitting between the
// controllers and the repositories. Multi-collection flows live here; the
// sub-operations run sequentially with no transaction, so a partial failure
// leaves whatever state the completed writes produced.
package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/pkg/logger"
)

// UserStore is the slice of the user repository the account service needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	SoftDelete(ctx context.Context, email string) (*mongo.UpdateResult, error)
	SetVerified(ctx context.Context, email string, verified bool) (*mongo.UpdateResult, error)
}

// BookModeration is the slice of the book repository used by account
// cascades and seller verification.
type BookModeration interface {
	ClearOrderedByBuyer(ctx context.Context, email string) (*mongo.UpdateResult, error)
	DeleteBySeller(ctx context.Context, email string) (*mongo.DeleteResult, error)
	SetVerifiedSeller(ctx context.Context, email string, verified bool) (*mongo.UpdateResult, error)
}

// OrderPurge is the slice of the order repository used by the account cascade.
type OrderPurge interface {
	DeleteByBuyer(ctx context.Context, email string) (*mongo.DeleteResult, error)
}

// AccountService owns user lifecycle: registration, role resolution, the
// cascading delete and seller verification.
type AccountService struct {
	users  UserStore
	books  BookModeration
	orders OrderPurge
}

func NewAccountService(users UserStore, books BookModeration, orders OrderPurge) *AccountService {
	return &AccountService{users: users, books: books, orders: orders}
}

// Register inserts doc if no account exists for its email. The body is stored
// verbatim, caller-supplied role included. The existence check is a plain
// find, not a unique index, so two concurrent registrations for the same
// email can both insert.
func (s *AccountService) Register(ctx context.Context, doc map[string]interface{}) (added bool, err error) {
	email, _ := doc["email"].(string)

	_, err = s.users.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}

	if _, err := s.users.Insert(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

// Role resolves an account's role. found is false when no account exists;
// the signature doubles as an rbac.RoleLookup.
func (s *AccountService) Role(ctx context.Context, email string) (role string, found bool, err error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return user.Role, true, nil
}

// ListByRole returns every account with the given role, soft-deleted ones
// included.
func (s *AccountService) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.users.ListByRole(ctx, role)
}

// IsDeleted reports the account's deleted flag. An absent account reads as
// not deleted.
func (s *AccountService) IsDeleted(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Deleted, nil
}

// Delete runs the account cascade: soft-delete the user, release every book
// the account had ordered, delete the books it sold and the orders it
// placed. The four writes are independent; done is true iff every command
// was acknowledged, regardless of how many documents each touched. Once
// dispatched the cascade is not cancellable.
func (s *AccountService) Delete(ctx context.Context, email string) (done bool) {
	ctx = context.WithoutCancel(ctx)
	done = true

	if _, err := s.users.SoftDelete(ctx, email); err != nil {
		logger.WithCtx(ctx).Error("account delete: soft-delete user", "email", email, "error", err)
		done = false
	}
	if _, err := s.books.ClearOrderedByBuyer(ctx, email); err != nil {
		logger.WithCtx(ctx).Error("account delete: release ordered books", "email", email, "error", err)
		done = false
	}
	if _, err := s.books.DeleteBySeller(ctx, email); err != nil {
		logger.WithCtx(ctx).Error("account delete: delete listed books", "email", email, "error", err)
		done = false
	}
	if _, err := s.orders.DeleteByBuyer(ctx, email); err != nil {
		logger.WithCtx(ctx).Error("account delete: delete orders", "email", email, "error", err)
		done = false
	}
	return done
}

// Verify marks a seller verified: verifiedSeller on all their books, then
// verified on the account. Unlike Delete, success here is strict on the user
// write: the books command must be acknowledged and exactly one user
// document modified.
func (s *AccountService) Verify(ctx context.Context, email string) (bool, error) {
	return s.setVerified(ctx, email, true)
}

// CancelVerify reverses Verify, removing both flags.
func (s *AccountService) CancelVerify(ctx context.Context, email string) (bool, error) {
	return s.setVerified(ctx, email, false)
}

func (s *AccountService) setVerified(ctx context.Context, email string, verified bool) (bool, error) {
	ctx = context.WithoutCancel(ctx)

	if _, err := s.books.SetVerifiedSeller(ctx, email, verified); err != nil {
		return false, err
	}

	res, err := s.users.SetVerified(ctx, email, verified)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
