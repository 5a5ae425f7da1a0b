// Package model provides data models for the inventory tool.
package model

// Default role keywords in precedence order.
const (
	RoleMgmt  = "mgmt"
	RoleLogin = "login"
	RoleGPU   = "gpu"
	RoleCPU   = "cpu"
)

// DefaultRoles returns the default role keyword list.
// The order decides classification precedence and output order.
func DefaultRoles() []string {
	return []string{RoleMgmt, RoleLogin, RoleGPU, RoleCPU}
}

// Inventory holds machines grouped into role buckets.
// Buckets preserve insertion order; the role list preserves configured order.
type Inventory struct {
	roles        []string
	buckets      map[string][]MachineRecord
	unclassified []MachineRecord
}

// NewInventory creates an empty inventory for the given ordered roles.
func NewInventory(roles []string) *Inventory {
	inv := &Inventory{
		roles:   append([]string(nil), roles...),
		buckets: make(map[string][]MachineRecord, len(roles)),
	}
	return inv
}

// Roles returns the ordered role keywords.
func (inv *Inventory) Roles() []string {
	return append([]string(nil), inv.roles...)
}

// HasRole reports whether role is one of the inventory's roles.
func (inv *Inventory) HasRole(role string) bool {
	for _, r := range inv.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Add appends a record to the bucket of role.
// Records for unknown roles are treated as unclassified.
func (inv *Inventory) Add(role string, rec MachineRecord) {
	if !inv.HasRole(role) {
		inv.AddUnclassified(rec)
		return
	}
	inv.buckets[role] = append(inv.buckets[role], rec)
}

// AddUnclassified records a machine that matched no role.
func (inv *Inventory) AddUnclassified(rec MachineRecord) {
	inv.unclassified = append(inv.unclassified, rec)
}

// Records returns the records of the given roles, concatenated in argument order.
func (inv *Inventory) Records(roles ...string) []MachineRecord {
	var out []MachineRecord
	for _, role := range roles {
		out = append(out, inv.buckets[role]...)
	}
	return out
}

// All returns every classified record in role order, then insertion order.
func (inv *Inventory) All() []MachineRecord {
	return inv.Records(inv.roles...)
}

// RoleOf returns the role a record name was classified into.
func (inv *Inventory) RoleOf(name string) (string, bool) {
	for _, role := range inv.roles {
		for _, rec := range inv.buckets[role] {
			if rec.Name == name {
				return role, true
			}
		}
	}
	return "", false
}

// Unclassified returns records that matched no role keyword, in input order.
func (inv *Inventory) Unclassified() []MachineRecord {
	return append([]MachineRecord(nil), inv.unclassified...)
}

// Count returns the number of classified records.
func (inv *Inventory) Count() int {
	n := 0
	for _, role := range inv.roles {
		n += len(inv.buckets[role])
	}
	return n
}

// RoleCounts returns the number of records per role.
func (inv *Inventory) RoleCounts() map[string]int {
	counts := make(map[string]int, len(inv.roles))
	for _, role := range inv.roles {
		counts[role] = len(inv.buckets[role])
	}
	return counts
}
