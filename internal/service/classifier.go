// Package service provides business logic services for the inventory tool.
package service

import (
	"strings"

	"inventory-tool/internal/model"
)

// Rule pairs a role with the predicate that selects its machines.
type Rule struct {
	Role  string
	Match func(name string) bool
}

// Classifier assigns machines to roles. Rules are evaluated in order and the
// first match wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier with one substring rule per role keyword,
// in the given order.
func NewClassifier(roles []string) *Classifier {
	rules := make([]Rule, 0, len(roles))
	for _, role := range roles {
		keyword := role
		rules = append(rules, Rule{
			Role:  role,
			Match: func(name string) bool { return strings.Contains(name, keyword) },
		})
	}
	return &Classifier{rules: rules}
}

// NewClassifierWithRules creates a classifier from explicit rules.
func NewClassifierWithRules(rules ...Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Roles returns the roles in precedence order.
func (c *Classifier) Roles() []string {
	roles := make([]string, len(c.rules))
	for i, r := range c.rules {
		roles[i] = r.Role
	}
	return roles
}

// Classify returns the role of the first rule matching name.
func (c *Classifier) Classify(name string) (string, bool) {
	for _, r := range c.rules {
		if r.Match(name) {
			return r.Role, true
		}
	}
	return "", false
}

// Group classifies records in input order into a new inventory.
func (c *Classifier) Group(records []model.MachineRecord) *model.Inventory {
	inv := model.NewInventory(c.Roles())
	for _, rec := range records {
		role, ok := c.Classify(rec.Name)
		if !ok {
			inv.AddUnclassified(rec)
			continue
		}
		inv.Add(role, rec)
	}
	return inv
}
