// Package yml renders the inventory in Ansible's YAML inventory format.
package yml

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"inventory-tool/internal/model"
)

const extension = ".yml"

// Writer implements report.ReportWriter for the YAML inventory format.
type Writer struct{}

// NewWriter creates a new YAML inventory writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "yaml"
}

// Write renders the inventory to outputPath with a .yml extension.
func (w *Writer) Write(inv *model.Inventory, layout *model.Layout, outputPath string) error {
	if inv == nil {
		return fmt.Errorf("inventory is nil")
	}
	if layout == nil {
		return fmt.Errorf("layout is nil")
	}

	lower := strings.ToLower(outputPath)
	if !strings.HasSuffix(lower, ".yml") && !strings.HasSuffix(lower, ".yaml") {
		outputPath += extension
	}

	data, err := Render(inv, layout)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML inventory: %w", err)
	}
	return nil
}

// Render returns the YAML inventory document.
// Keys keep layout order: all.hosts, all.vars, then all.children.
func Render(inv *model.Inventory, layout *model.Layout) ([]byte, error) {
	all := newMap()
	children := newMap()
	groups := make(map[string]*yaml.Node) // group name -> group mapping node

	groupNode := func(name string) *yaml.Node {
		if name == model.GroupAll {
			return all
		}
		if n, ok := groups[name]; ok {
			return n
		}
		n := newMap()
		groups[name] = n
		setKey(children, name, n)
		return n
	}

	for _, block := range layout.Blocks {
		if block.Hosts {
			hosts := newMap()
			for _, rec := range inv.All() {
				host := newMap()
				setKey(host, "ansible_host", scalar(rec.Address))
				setKey(host, "ip", scalar(rec.Address))
				setKey(hosts, rec.Name, host)
			}
			setKey(all, "hosts", hosts)
		}

		for _, g := range block.Groups {
			node := groupNode(g.Name)
			if g.IsChildren() {
				members := memberNode(node, "children")
				for _, child := range g.Children {
					setKey(members, child, emptyMap())
				}
			} else {
				members := memberNode(node, "hosts")
				for _, rec := range inv.Records(g.Roles...) {
					setKey(members, rec.Name, emptyMap())
				}
			}
		}

		if block.Vars != nil {
			vars := memberNode(groupNode(block.Vars.Group), "vars")
			for _, kv := range block.Vars.Vars {
				setKey(vars, kv.Key, scalar(kv.Value))
			}
		}
	}

	if len(children.Content) > 0 {
		setKey(all, "children", children)
	}

	root := newMap()
	setKey(root, model.GroupAll, all)
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode YAML inventory: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML inventory: %w", err)
	}
	return buf.Bytes(), nil
}

func newMap() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// emptyMap is rendered as {} so members stay valid Ansible host/group entries.
func emptyMap() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle}
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// setKey sets key to value in mapping m, replacing an existing entry.
func setKey(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, scalar(key), value)
}

// memberNode returns the mapping under key in m, creating it when missing.
func memberNode(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	n := newMap()
	m.Content = append(m.Content, scalar(key), n)
	return n
}
