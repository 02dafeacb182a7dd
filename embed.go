// Package chargemap holds assets embedded into the binary.
package chargemap

import "embed"

// Migrations contains the goose SQL migrations of the service.
//
//go:embed migrations/*.sql
var Migrations embed.FS
