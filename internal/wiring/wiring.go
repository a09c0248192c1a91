// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/modpack/internal/adapters/cache"
	_ "go.trai.ch/modpack/internal/adapters/catalog"
	_ "go.trai.ch/modpack/internal/adapters/config"
	_ "go.trai.ch/modpack/internal/adapters/fs"
	_ "go.trai.ch/modpack/internal/adapters/index"
	_ "go.trai.ch/modpack/internal/adapters/logger"
	_ "go.trai.ch/modpack/internal/adapters/manifest"
	_ "go.trai.ch/modpack/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/modpack/internal/app"
	_ "go.trai.ch/modpack/internal/engine/pack"
	_ "go.trai.ch/modpack/internal/engine/resolver"
)
