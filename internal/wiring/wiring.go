// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hrdesk/internal/adapters/config"
	_ "go.trai.ch/hrdesk/internal/adapters/hrapi"
	_ "go.trai.ch/hrdesk/internal/adapters/linear"
	_ "go.trai.ch/hrdesk/internal/adapters/logger"
	_ "go.trai.ch/hrdesk/internal/adapters/snapshot"
	_ "go.trai.ch/hrdesk/internal/adapters/xlsx"
	// Register app and engine nodes.
	_ "go.trai.ch/hrdesk/internal/app"
	_ "go.trai.ch/hrdesk/internal/engine/directory"
	_ "go.trai.ch/hrdesk/internal/engine/submitter"
)
