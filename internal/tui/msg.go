package tui

import "github.com/danielolaszy/issuetable/internal/table"

// MsgSnapshot carries the controller's render state into the program.
type MsgSnapshot struct {
	Snapshot table.Snapshot
}
