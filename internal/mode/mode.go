// Package mode defines the shared services and messages the app
// injects into its mode controllers.
package mode

import (
	"fete/internal/config"
	"fete/internal/party"
	"fete/internal/ui/toaster"
)

// AppMode identifies the current application mode.
type AppMode int

const (
	ModePlanner AppMode = iota
	ModeParties
)

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Registry  *party.Registry
	Providers party.Providers
	Config    *config.Config
}

// ShowToastMsg asks the app to display a toast. Modes emit it instead
// of owning their own toaster, so notifications survive mode switches.
type ShowToastMsg struct {
	Message string
	Style   toaster.Style
}
