// Package n9e provides a client for the N9E (Nightingale) API.
package n9e

import (
	"encoding/json"
	"fmt"

	"inventory-tool/internal/model"
)

// TargetsResponse represents the API response from N9E /api/n9e/targets endpoint.
// The dat field contains a list wrapper with pagination info.
type TargetsResponse struct {
	Dat TargetListData `json:"dat"`
	Err string         `json:"err"` // Empty on success
}

// TargetListData wraps the target list with pagination info.
type TargetListData struct {
	List  []TargetData `json:"list"`
	Total int          `json:"total"`
}

// TargetData contains target information from N9E API.
type TargetData struct {
	ID         int64             `json:"id"`
	Ident      string            `json:"ident"` // hostname or hostname@IP
	Note       string            `json:"note"`
	Tags       []string          `json:"tags"`
	TagsMaps   map[string]string `json:"tags_maps"`
	HostIP     string            `json:"host_ip"`
	OS         string            `json:"os"`
	RemoteAddr string            `json:"remote_addr"`
	GroupIDs   []int64           `json:"group_ids"`
	ExtendInfo string            `json:"extend_info"` // JSON document, only returned by some versions
}

// ExtendInfo holds the parts of extend_info used to resolve a machine.
type ExtendInfo struct {
	Network  NetworkInfo  `json:"network"`
	Platform PlatformInfo `json:"platform"`
}

// NetworkInfo contains network information.
type NetworkInfo struct {
	IPAddress  string `json:"ipaddress"`
	MACAddress string `json:"macaddress"`
}

// PlatformInfo contains platform information.
type PlatformInfo struct {
	Hostname string `json:"hostname"`
	OS       string `json:"os"`
}

// ParseExtendInfo parses the extend_info JSON string into an ExtendInfo struct.
func ParseExtendInfo(s string) (*ExtendInfo, error) {
	if s == "" {
		return nil, fmt.Errorf("extend_info is empty")
	}
	var info ExtendInfo
	if err := json.Unmarshal([]byte(s), &info); err != nil {
		return nil, fmt.Errorf("failed to parse extend_info: %w", err)
	}
	return &info, nil
}

// ToMachineRecord converts a target to a machine record.
// The name is the ident without any "@IP" suffix. The address is host_ip,
// then the extend_info address, then remote_addr.
func (t *TargetData) ToMachineRecord() (model.MachineRecord, error) {
	rec := model.MachineRecord{
		Name:    model.CleanIdent(t.Ident),
		Address: t.HostIP,
	}
	if rec.Name == "" {
		return rec, fmt.Errorf("target %d has no ident", t.ID)
	}

	if rec.Address == "" && t.ExtendInfo != "" {
		if info, err := ParseExtendInfo(t.ExtendInfo); err == nil {
			rec.Address = info.Network.IPAddress
		}
	}
	if rec.Address == "" {
		rec.Address = t.RemoteAddr
	}
	if rec.Address == "" {
		return rec, fmt.Errorf("target %s has no address", t.Ident)
	}

	return rec, nil
}
