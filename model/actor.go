package model

import (
	"sort"

	"github.com/muhammadheryan/inventory-workflow/constant"
)

type PermissionSet map[string]struct{}

func NewPermissionSet(slugs ...string) PermissionSet {
	p := make(PermissionSet, len(slugs))
	for _, s := range slugs {
		p[s] = struct{}{}
	}
	return p
}

func (p PermissionSet) Has(slug string) bool {
	_, ok := p[slug]
	return ok
}

func (p PermissionSet) Slugs() []string {
	out := make([]string, 0, len(p))
	for s := range p {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Actor is the caller of an engine operation. It is always passed explicitly.
type Actor struct {
	UserID      uint64        `json:"user_id"`
	BranchID    uint64        `json:"branch_id"`
	Permissions PermissionSet `json:"-"`
}

func (a *Actor) Can(slug string) bool {
	return a != nil && a.Permissions.Has(slug)
}

// ActsFor reports whether the actor may act on behalf of branchID. Central warehouse
// staff act for every branch.
func (a *Actor) ActsFor(branchID uint64) bool {
	if a == nil {
		return false
	}
	return a.BranchID == constant.CentralWarehouseID || a.BranchID == branchID
}
