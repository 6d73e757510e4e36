// Package controllers translates HTTP requests into store operations.
// Controllers depend on narrow interfaces implemented by the services and
// repositories, so tests can substitute fakes without a running store.
package controllers

import "github.com/shashiranjanraj/wisdorage/pkg/ctx"

// StatusController answers the liveness probe.
type StatusController struct{}

func NewStatusController() *StatusController { return &StatusController{} }

// Home reports the process is up.
func (s *StatusController) Home(c *ctx.Context) {
	c.OK(map[string]string{"status": "running"})
}
