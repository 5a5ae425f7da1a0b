// Package model provides data models for the inventory tool.
package model

// Layout describes the ordered blocks of a generated inventory.
type Layout struct {
	Blocks []Block
}

// Block is a titled part of the inventory.
// Hosts, Groups and Vars are rendered in that order when present.
type Block struct {
	Title  string       // Heading text
	Hosts  bool         // List every classified record as a host line
	Groups []Group      // Named groups, in output order
	Vars   *VarsSection // Optional group variables
}

// Group is a named inventory group.
// A group either lists machines from Roles or other groups from Children.
type Group struct {
	Name     string   // Group name, e.g. "kube-node"
	Roles    []string // Member roles, concatenated in order
	Children []string // Child group names
}

// IsChildren reports whether the group is a group of groups.
func (g Group) IsChildren() bool {
	return len(g.Children) > 0
}

// VarsSection holds variables applied to a group.
type VarsSection struct {
	Group string   // Target group, e.g. "all"
	Vars  []KeyVal // Ordered key/value pairs
}

// KeyVal is a single variable assignment.
type KeyVal struct {
	Key   string
	Value string
}

// Group names used by the default layout.
const (
	GroupKubeMaster   = "kube-master"
	GroupEtcd         = "etcd"
	GroupKubeNode     = "kube-node"
	GroupK8sCluster   = "k8s-cluster"
	GroupSlurmMaster  = "slurm-master"
	GroupSlurmNode    = "slurm-node"
	GroupSlurmCluster = "slurm-cluster"
	GroupAll          = "all"
)

// DefaultLayout returns the Kubernetes/Slurm inventory layout.
func DefaultLayout(user, password string) *Layout {
	return &Layout{
		Blocks: []Block{
			{
				Title: "ALL NODES",
				Hosts: true,
			},
			{
				Title: "KUBERNETES",
				Groups: []Group{
					{Name: GroupKubeMaster, Roles: []string{RoleMgmt}},
					{Name: GroupEtcd, Roles: []string{RoleMgmt}},
					{Name: GroupKubeNode, Roles: []string{RoleGPU, RoleCPU}},
					{Name: GroupK8sCluster, Children: []string{GroupKubeMaster, GroupKubeNode}},
				},
			},
			{
				Title: "SLURM",
				Groups: []Group{
					{Name: GroupSlurmMaster, Roles: []string{RoleLogin}},
					{Name: GroupSlurmNode, Roles: []string{RoleGPU, RoleCPU}},
					{Name: GroupSlurmCluster, Children: []string{GroupSlurmMaster, GroupSlurmNode}},
				},
			},
			{
				Title: "SSH connection configuration",
				Vars: &VarsSection{
					Group: GroupAll,
					Vars: []KeyVal{
						{Key: "ansible_user", Value: user},
						{Key: "ansible_password", Value: password},
					},
				},
			},
		},
	}
}

// Groups returns every group of the layout in output order.
func (l *Layout) Groups() []Group {
	var groups []Group
	for _, b := range l.Blocks {
		groups = append(groups, b.Groups...)
	}
	return groups
}
