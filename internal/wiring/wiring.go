// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scout/internal/adapters/config"
	_ "go.trai.ch/scout/internal/adapters/fetch"
	_ "go.trai.ch/scout/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/scout/internal/app"
	_ "go.trai.ch/scout/internal/engine/resolver"
)
