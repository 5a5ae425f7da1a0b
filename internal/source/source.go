// Package source provides the machine list sources of the inventory tool.
package source

import (
	"context"

	"inventory-tool/internal/model"
)

// Source loads machine records in input order.
type Source interface {
	// Load returns every machine record of the source.
	Load(ctx context.Context) ([]model.MachineRecord, error)

	// Name returns a short identifier used in logs.
	Name() string
}
