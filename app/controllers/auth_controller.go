package controllers

import (
	"github.com/shashiranjanraj/wisdorage/pkg/auth"
	"github.com/shashiranjanraj/wisdorage/pkg/ctx"
	"github.com/shashiranjanraj/wisdorage/pkg/logger"
)

// AuthController mints bearer tokens. There is no credential check: anyone
// can request a token for any email they claim. Expiry is the only lifecycle
// bound on a token.
type AuthController struct{}

func NewAuthController() *AuthController { return &AuthController{} }

// Token answers {"token": ...} for the email query parameter.
func (a *AuthController) Token(c *ctx.Context) {
	email := c.Query("email")

	token, err := auth.GenerateToken(email)
	if err != nil {
		logger.WithCtx(c.Context()).Error("auth: sign token", "error", err)
		c.Internal()
		return
	}

	c.OK(map[string]string{"token": token})
}
