// Package activitydetail reads activity detail exports. Only the driver and time columns
// are required; event, asset and location columns are used when present.
package activitydetail

import (
	"github.com/traxovo/traxovo/pkg/dataimporter/formats"
	"github.com/traxovo/traxovo/pkg/dataimporter/header"
	"github.com/traxovo/traxovo/pkg/fleet"
)

type Format struct{}

func (f Format) Source() fleet.SourceKind {
	return fleet.SourceActivityDetail
}

func (f Format) RequiredRoles() []header.Role {
	return []header.Role{header.RoleDriver, header.RoleTime}
}

func (f Format) Enrich(row []string, columns header.ColumnMap, event *fleet.Event) {
	if _, exists := columns.Get(header.RoleEvent); exists {
		event.EventType = columns.Value(row, header.RoleEvent)
		event.Kind = formats.EventKindFromText(event.EventType)
	}

	event.AssetID = columns.Value(row, header.RoleAsset)
	event.Location = columns.Value(row, header.RoleLocation)
}
