package career

import "fmt"

// Catalog enumerates role profiles. Injected into the Engine so tests can
// score against fixtures instead of the production catalogue.
type Catalog interface {
	// Roles returns every profile in catalogue order. Catalogue order is
	// the scoring tie-break, so implementations must keep it stable.
	Roles() []RoleProfile

	// Get returns the profile with the given ID.
	Get(id string) (RoleProfile, error)
}

// StaticCatalog is an in-memory Catalog over a fixed slice of profiles.
type StaticCatalog struct {
	roles []RoleProfile
	byID  map[string]int
}

// NewStaticCatalog builds a catalog from profiles, preserving order.
func NewStaticCatalog(roles []RoleProfile) *StaticCatalog {
	c := &StaticCatalog{
		roles: roles,
		byID:  make(map[string]int, len(roles)),
	}
	for i, r := range roles {
		c.byID[r.ID] = i
	}
	return c
}

// DefaultCatalog returns the built-in production role catalogue.
func DefaultCatalog() *StaticCatalog {
	return NewStaticCatalog(defaultRoles())
}

func (c *StaticCatalog) Roles() []RoleProfile {
	out := make([]RoleProfile, len(c.roles))
	copy(out, c.roles)
	return out
}

func (c *StaticCatalog) Get(id string) (RoleProfile, error) {
	i, ok := c.byID[id]
	if !ok {
		return RoleProfile{}, fmt.Errorf("unknown role %q", id)
	}
	return c.roles[i], nil
}
