package controllers

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/wisdorage/app/events"
	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/pkg/ctx"
	"github.com/shashiranjanraj/wisdorage/pkg/logger"
)

// AccountDirectory is the account surface the user controller calls.
// Implemented by services.AccountService.
type AccountDirectory interface {
	Register(ctx context.Context, doc map[string]interface{}) (added bool, err error)
	Role(ctx context.Context, email string) (role string, found bool, err error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	IsDeleted(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, email string) (done bool)
	Verify(ctx context.Context, email string) (bool, error)
	CancelVerify(ctx context.Context, email string) (bool, error)
}

// UserController handles registration, role queries, admin listings and the
// admin moderation actions.
type UserController struct {
	accounts AccountDirectory
	feed     *events.Bus
}

func NewUserController(accounts AccountDirectory, feed *events.Bus) *UserController {
	return &UserController{accounts: accounts, feed: feed}
}

// Register inserts the posted account if the email is not yet taken. The
// body goes into the store verbatim, role included.
func (u *UserController) Register(c *ctx.Context) {
	var doc map[string]interface{}
	if !c.BindJSON(&doc) {
		return
	}

	added, err := u.accounts.Register(c.Context(), doc)
	if err != nil {
		logger.WithCtx(c.Context()).Error("users: register", "error", err)
		c.Internal()
		return
	}

	if !added {
		c.OK(map[string]string{"message": "User Already Exists"})
		return
	}
	c.OK(map[string]string{"message": "User Added"})
}

// Role answers {"role": ...} for the email query parameter, null when no
// account exists.
func (u *UserController) Role(c *ctx.Context) {
	role, found, err := u.accounts.Role(c.Context(), c.Query("email"))
	if err != nil {
		logger.WithCtx(c.Context()).Error("users: role lookup", "error", err)
		c.Internal()
		return
	}

	if !found {
		c.OK(map[string]interface{}{"role": nil})
		return
	}
	c.OK(map[string]interface{}{"role": role})
}

// ListByRole lists accounts with the role query parameter's value.
func (u *UserController) ListByRole(c *ctx.Context) {
	u.list(c, c.Query("role"))
}

// Sellers lists every seller account.
func (u *UserController) Sellers(c *ctx.Context) {
	u.list(c, models.RoleSeller)
}

// Buyers lists every buyer account.
func (u *UserController) Buyers(c *ctx.Context) {
	u.list(c, models.RoleBuyer)
}

func (u *UserController) list(c *ctx.Context, role string) {
	users, err := u.accounts.ListByRole(c.Context(), role)
	if err != nil {
		logger.WithCtx(c.Context()).Error("users: list", "role", role, "error", err)
		c.Internal()
		return
	}
	c.OK(users)
}

// Delete runs the account cascade and answers {"done": bool}.
func (u *UserController) Delete(c *ctx.Context) {
	email := c.Param("email")

	done := u.accounts.Delete(c.Context(), email)
	if done {
		u.feed.Fire(events.UserDeleted, events.UserEvent{Email: email})
	}

	c.OK(map[string]bool{"done": done})
}

// IsDeleted answers {"isDeleted": bool}; an absent account reads false.
func (u *UserController) IsDeleted(c *ctx.Context) {
	deleted, err := u.accounts.IsDeleted(c.Context(), c.Param("user"))
	if err != nil {
		logger.WithCtx(c.Context()).Error("users: is-deleted lookup", "error", err)
		c.Internal()
		return
	}
	c.OK(map[string]bool{"isDeleted": deleted})
}

// Verify marks a seller verified and answers {"verified": bool}.
func (u *UserController) Verify(c *ctx.Context) {
	email := c.Param("user")

	verified, err := u.accounts.Verify(c.Context(), email)
	if err != nil {
		logger.WithCtx(c.Context()).Error("users: verify seller", "email", email, "error", err)
		c.Internal()
		return
	}

	if verified {
		u.feed.Fire(events.SellerVerified, events.SellerEvent{Email: email})
	}
	c.JSON(http.StatusOK, map[string]bool{"verified": verified})
}

// CancelVerify removes the verified flags and answers {"cancelled": bool}.
func (u *UserController) CancelVerify(c *ctx.Context) {
	email := c.Param("user")

	cancelled, err := u.accounts.CancelVerify(c.Context(), email)
	if err != nil {
		logger.WithCtx(c.Context()).Error("users: cancel verify", "email", email, "error", err)
		c.Internal()
		return
	}

	if cancelled {
		u.feed.Fire(events.SellerUnverified, events.SellerEvent{Email: email})
	}
	c.JSON(http.StatusOK, map[string]bool{"cancelled": cancelled})
}
