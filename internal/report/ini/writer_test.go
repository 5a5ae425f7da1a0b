package ini

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-tool/internal/model"
)

// newExampleInventory builds the four-machine example inventory.
func newExampleInventory() *model.Inventory {
	inv := model.NewInventory(model.DefaultRoles())
	inv.Add(model.RoleMgmt, model.MachineRecord{Name: "mgmt01", Address: "10.0.0.1"})
	inv.Add(model.RoleGPU, model.MachineRecord{Name: "gpu01", Address: "10.0.0.2"})
	inv.Add(model.RoleCPU, model.MachineRecord{Name: "cpu01", Address: "10.0.0.3"})
	inv.Add(model.RoleLogin, model.MachineRecord{Name: "login01", Address: "10.0.0.4"})
	return inv
}

const exampleInventory = `##########
# ALL NODES
##########
mgmt01 ansible_host=10.0.0.1 ip=10.0.0.1
login01 ansible_host=10.0.0.4 ip=10.0.0.4
gpu01 ansible_host=10.0.0.2 ip=10.0.0.2
cpu01 ansible_host=10.0.0.3 ip=10.0.0.3

##########
# KUBERNETES
##########
[kube-master]
mgmt01

[etcd]
mgmt01

[kube-node]
gpu01
cpu01

[k8s-cluster:children]
kube-master
kube-node

##########
# SLURM
##########
[slurm-master]
login01

[slurm-node]
gpu01
cpu01

[slurm-cluster:children]
slurm-master
slurm-node

##########
# SSH connection configuration
##########
[all:vars]
ansible_user=vagrant
ansible_password=vagrant
`

const emptyInventory = `##########
# ALL NODES
##########

##########
# KUBERNETES
##########
[kube-master]

[etcd]

[kube-node]

[k8s-cluster:children]
kube-master
kube-node

##########
# SLURM
##########
[slurm-master]

[slurm-node]

[slurm-cluster:children]
slurm-master
slurm-node

##########
# SSH connection configuration
##########
[all:vars]
ansible_user=vagrant
ansible_password=vagrant
`

func TestRender_Example(t *testing.T) {
	got := Render(newExampleInventory(), model.DefaultLayout("vagrant", "vagrant"))
	assert.Equal(t, exampleInventory, got)
}

func TestRender_Empty(t *testing.T) {
	inv := model.NewInventory(model.DefaultRoles())
	got := Render(inv, model.DefaultLayout("vagrant", "vagrant"))
	assert.Equal(t, emptyInventory, got)
}

func TestRender_Idempotent(t *testing.T) {
	layout := model.DefaultLayout("vagrant", "vagrant")
	first := Render(newExampleInventory(), layout)
	second := Render(newExampleInventory(), layout)
	assert.Equal(t, first, second)
}

func TestRender_NodeSectionsMatchGPUThenCPU(t *testing.T) {
	inv := model.NewInventory(model.DefaultRoles())
	inv.Add(model.RoleCPU, model.MachineRecord{Name: "cpu01", Address: "10.0.1.1"})
	inv.Add(model.RoleGPU, model.MachineRecord{Name: "gpu01", Address: "10.0.2.1"})
	inv.Add(model.RoleCPU, model.MachineRecord{Name: "cpu02", Address: "10.0.1.2"})
	inv.Add(model.RoleGPU, model.MachineRecord{Name: "gpu02", Address: "10.0.2.2"})

	out := Render(inv, model.DefaultLayout("u", "p"))

	var want []string
	for _, rec := range inv.Records(model.RoleGPU, model.RoleCPU) {
		want = append(want, rec.Name)
	}
	assert.Equal(t, want, sectionBody(t, out, "[kube-node]"))
	assert.Equal(t, want, sectionBody(t, out, "[slurm-node]"))
	assert.Equal(t, []string{"gpu01", "gpu02", "cpu01", "cpu02"}, want)
}

func TestRender_CustomConnectionVars(t *testing.T) {
	out := Render(newExampleInventory(), model.DefaultLayout("ops", "hunter2"))
	assert.True(t, strings.HasSuffix(out, "[all:vars]\nansible_user=ops\nansible_password=hunter2\n"))
}

func TestWriter_Format(t *testing.T) {
	assert.Equal(t, "ini", NewWriter().Format())
}

func TestWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than nothing"), 0644))

	w := NewWriter()
	require.NoError(t, w.Write(newExampleInventory(), model.DefaultLayout("vagrant", "vagrant"), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, exampleInventory, string(data))
}

func TestWriter_WriteErrors(t *testing.T) {
	w := NewWriter()
	layout := model.DefaultLayout("vagrant", "vagrant")

	assert.Error(t, w.Write(nil, layout, filepath.Join(t.TempDir(), "inventory")))
	assert.Error(t, w.Write(newExampleInventory(), nil, filepath.Join(t.TempDir(), "inventory")))

	missingDir := filepath.Join(t.TempDir(), "missing", "inventory")
	err := w.Write(newExampleInventory(), layout, missingDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write inventory")
}

// sectionBody returns the lines following header up to the next blank line.
func sectionBody(t *testing.T, out, header string) []string {
	t.Helper()
	idx := strings.Index(out, header+"\n")
	require.GreaterOrEqual(t, idx, 0, "section %s not found", header)

	var lines []string
	for _, line := range strings.Split(out[idx+len(header)+1:], "\n") {
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return lines
}
