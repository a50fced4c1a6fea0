// Package drivinghistory reads driving history exports, which carry one ignition or
// status message per row against a driver contact.
package drivinghistory

import (
	"github.com/traxovo/traxovo/pkg/dataimporter/formats"
	"github.com/traxovo/traxovo/pkg/dataimporter/header"
	"github.com/traxovo/traxovo/pkg/fleet"
)

type Format struct{}

func (f Format) Source() fleet.SourceKind {
	return fleet.SourceDrivingHistory
}

func (f Format) RequiredRoles() []header.Role {
	return []header.Role{header.RoleDriver, header.RoleEvent, header.RoleTime}
}

func (f Format) Enrich(row []string, columns header.ColumnMap, event *fleet.Event) {
	event.EventType = columns.Value(row, header.RoleEvent)
	event.Kind = formats.EventKindFromText(event.EventType)
	event.Location = columns.Value(row, header.RoleLocation)
}
