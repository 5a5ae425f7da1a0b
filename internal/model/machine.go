// Package model provides data models for the inventory tool.
package model

import "strings"

// MachineRecord is a single machine parsed from the machine list.
type MachineRecord struct {
	Name    string `json:"name" yaml:"name"`       // Machine name, matched against role keywords
	Address string `json:"address" yaml:"address"` // IP address used for ansible_host and ip
}

// CleanIdent extracts the hostname from an ident string.
// It handles the "hostname@IP" format by returning only the hostname part.
func CleanIdent(ident string) string {
	if idx := strings.Index(ident, "@"); idx > 0 {
		return ident[:idx]
	}
	return ident
}
