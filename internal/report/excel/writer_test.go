package excel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"inventory-tool/internal/model"
)

func newTestInventory() *model.Inventory {
	inv := model.NewInventory(model.DefaultRoles())
	inv.Add(model.RoleMgmt, model.MachineRecord{Name: "mgmt01", Address: "10.0.0.1"})
	inv.Add(model.RoleGPU, model.MachineRecord{Name: "gpu01", Address: "10.0.0.2"})
	inv.Add(model.RoleCPU, model.MachineRecord{Name: "cpu01", Address: "10.0.0.3"})
	inv.Add(model.RoleLogin, model.MachineRecord{Name: "login01", Address: "10.0.0.4"})
	return inv
}

func TestWriter_Format(t *testing.T) {
	assert.Equal(t, "excel", NewWriter().Format())
}

func TestWriter_Write_NilInputs(t *testing.T) {
	w := NewWriter()
	err := w.Write(nil, model.DefaultLayout("u", "p"), "test.xlsx")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nil"))

	assert.Error(t, w.Write(newTestInventory(), nil, "test.xlsx"))
}

func TestWriter_Write_Success(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "inventory")

	w := NewWriter()
	require.NoError(t, w.Write(newTestInventory(), model.DefaultLayout("vagrant", "vagrant"), outputPath))

	// Extension is appended
	_, err := os.Stat(outputPath + ".xlsx")
	require.NoError(t, err)

	f, err := excelize.OpenFile(outputPath + ".xlsx")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetHosts, sheetGroups}, f.GetSheetList())

	rows, err := f.GetRows(sheetHosts)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Name", "Address", "Role"}, rows[0])
	assert.Equal(t, []string{"mgmt01", "10.0.0.1", "mgmt"}, rows[1])
	assert.Equal(t, []string{"login01", "10.0.0.4", "login"}, rows[2])
	assert.Equal(t, []string{"gpu01", "10.0.0.2", "gpu"}, rows[3])
	assert.Equal(t, []string{"cpu01", "10.0.0.3", "cpu"}, rows[4])

	groups, err := f.GetRows(sheetGroups)
	require.NoError(t, err)
	assert.Equal(t, []string{"Block", "Group", "Kind", "Member"}, groups[0])
	assert.Equal(t, []string{"KUBERNETES", "kube-master", "hosts", "mgmt01"}, groups[1])
	assert.Contains(t, groups, []string{"KUBERNETES", "k8s-cluster", "children", "kube-node"})
	assert.Contains(t, groups, []string{"SLURM", "slurm-node", "hosts", "cpu01"})
}

func TestWriter_Write_Unclassified(t *testing.T) {
	inv := newTestInventory()
	inv.AddUnclassified(model.MachineRecord{Name: "nas01", Address: "10.0.0.9"})
	outputPath := filepath.Join(t.TempDir(), "inventory.xlsx")

	require.NoError(t, NewWriter().Write(inv, model.DefaultLayout("vagrant", "vagrant"), outputPath))

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetUnclassified)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name", "Address"}, {"nas01", "10.0.0.9"}}, rows)
}

func TestWriter_Write_EmptyGroupsKeepRow(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, NewWriter().Write(model.NewInventory(model.DefaultRoles()), model.DefaultLayout("u", "p"), outputPath))

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer f.Close()

	groups, err := f.GetRows(sheetGroups)
	require.NoError(t, err)
	// Empty member cells are trimmed by GetRows.
	assert.Contains(t, groups, []string{"KUBERNETES", "kube-master", "hosts"})
}
