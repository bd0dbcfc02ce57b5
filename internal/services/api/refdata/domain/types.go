// Package domain holds types and ports for marketplace reference data
package domain

import "context"

// ServicePort serves the slow-moving lookup lists the mobile clients
// cache locally
type ServicePort interface {
	Categories(ctx context.Context) ([]string, error)
	Skills(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
}
