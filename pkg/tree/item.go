// Package tree exposes the blueprint listing as a host tree-data provider:
// flat display items, each bound to the action a selection should trigger.
package tree

import (
	"github.com/goliatone/go-torqueui/pkg/blueprint"
)

// ActionOpenReserveForm is the UI command bound to blueprint items. It is
// handled inside this module by the panel manager, not by the host.
const ActionOpenReserveForm = "open_reserve_form"

// ReserveArgs is the payload carried by an open-reserve-form action.
type ReserveArgs struct {
	// BlueprintName is the raw name exactly as the listing reported it.
	BlueprintName string
	Inputs        []blueprint.Input
	Artifacts     blueprint.Artifacts
	Branch        string
}

// Action binds an item to a command. Reserve is set only for
// ActionOpenReserveForm commands; host commands carry no payload.
type Action struct {
	Command string
	Reserve *ReserveArgs
}

// Item is a single row of the blueprint tree. Items are display-only and
// rebuilt on every refresh; no identity persists across refreshes.
type Item struct {
	Label       string
	Description string
	Collapsible bool
	Action      *Action
}
