// Package module holds the module contract and the bootstrap registry used by main
package module

import (
	phttp "paperwork/internal/platform/net/http"
)

// Module mirrors modkit.Module so this package can be imported by modkit's consumers
// without pulling in modkit's option wiring
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
