// Package domain holds the paperwork module's contracts
package domain

import (
	"context"

	"paperwork/internal/adapters/sheet"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summarize(ctx context.Context, in Upload) (Result, error)
	Formats() []sheet.Format
}
