// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pyrelgen/internal/adapters/cache"
	_ "go.trai.ch/pyrelgen/internal/adapters/config"
	_ "go.trai.ch/pyrelgen/internal/adapters/emitter"
	_ "go.trai.ch/pyrelgen/internal/adapters/github"
	_ "go.trai.ch/pyrelgen/internal/adapters/logger"
	_ "go.trai.ch/pyrelgen/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/pyrelgen/internal/app"
	_ "go.trai.ch/pyrelgen/internal/engine/generator"
)
