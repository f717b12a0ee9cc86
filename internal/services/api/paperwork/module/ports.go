package module

import "paperwork/internal/services/api/paperwork/domain"

// Ports is the port set other modules may pull from this module
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
