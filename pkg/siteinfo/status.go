package siteinfo

import (
	"context"

	"dealersite/pkg/tenants"
)

// Status is the outcome of a tenant status lookup. Active is only meaningful
// when Result.OK().
type Status struct {
	Result
	Active bool
}

// StatusChecker looks up whether the tenant behind a request is active.
type StatusChecker interface {
	Status(ctx context.Context, req tenants.Request, target tenants.Target) Status
}

// Status reads is_active from site-info. A missing or non-boolean is_active
// counts as active; only an explicit false suspends.
func (c *Client) Status(ctx context.Context, req tenants.Request, target tenants.Target) Status {
	res := c.Fetch(ctx, "status", req, target)
	if !res.OK() {
		return Status{Result: res}
	}
	active := true
	if b, ok := res.Raw["is_active"].(bool); ok {
		active = b
	}
	return Status{Result: res, Active: active}
}
