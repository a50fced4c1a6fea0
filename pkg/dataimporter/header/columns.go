package header

import "strings"

type Role string

const (
	RoleDriver   Role = "driver"
	RoleEvent    Role = "event"
	RoleTime     Role = "time"
	RoleAsset    Role = "asset"
	RoleLocation Role = "location"
)

type roleRule struct {
	Role       Role
	Exact      []string
	Substrings []string
}

// Rules are tried in this order for every column, but only after every column has been
// checked against the exact names of all rules. A substring match never takes a role
// that an exact name elsewhere in the row claims.
var roleRules = []roleRule{
	{Role: RoleDriver, Exact: []string{"contact", "contactname"}, Substrings: []string{"driver"}},
	{Role: RoleEvent, Exact: []string{"msgtype", "reasonx"}, Substrings: []string{"event"}},
	{Role: RoleTime, Exact: []string{"eventdatetime", "eventdatetimex"}, Substrings: []string{"timestamp"}},
	{Role: RoleAsset, Exact: []string{"assetlabel"}, Substrings: []string{"asset"}},
	{Role: RoleLocation, Exact: []string{"locationx"}, Substrings: []string{"location", "address"}},
}

// ColumnMap maps a semantic role to the index of the column holding it
type ColumnMap map[Role]int

// MapColumns assigns roles to header cells. Exact names are matched across the whole row
// before substrings, so "EventDateTime" lands on time even though it contains "event".
// A column takes at most one role and the first column to claim a role keeps it.
func MapColumns(row []string) ColumnMap {
	columns := ColumnMap{}
	claimed := map[int]bool{}

	names := make([]string, len(row))
	for i, cell := range row {
		names[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, byteOrderMark)))
	}

	assign := func(matches func(rule roleRule, name string) bool) {
		for i, name := range names {
			if claimed[i] || name == "" {
				continue
			}

			for _, rule := range roleRules {
				if _, taken := columns[rule.Role]; taken {
					continue
				}

				if matches(rule, name) {
					columns[rule.Role] = i
					claimed[i] = true
					break
				}
			}
		}
	}

	assign(func(rule roleRule, name string) bool {
		for _, exact := range rule.Exact {
			if name == exact {
				return true
			}
		}
		return false
	})
	assign(func(rule roleRule, name string) bool {
		for _, substring := range rule.Substrings {
			if strings.Contains(name, substring) {
				return true
			}
		}
		return false
	})

	return columns
}

func (c ColumnMap) Get(role Role) (int, bool) {
	index, exists := c[role]
	return index, exists
}

func (c ColumnMap) Has(roles ...Role) bool {
	return len(c.Missing(roles...)) == 0
}

func (c ColumnMap) Missing(roles ...Role) []Role {
	var missing []Role
	for _, role := range roles {
		if _, exists := c[role]; !exists {
			missing = append(missing, role)
		}
	}

	return missing
}

// MaxIndex is the highest mapped column index, or -1 when nothing is mapped
func (c ColumnMap) MaxIndex() int {
	maxIndex := -1
	for _, index := range c {
		if index > maxIndex {
			maxIndex = index
		}
	}

	return maxIndex
}

// Value returns the trimmed cell for role, or an empty string if the role is unmapped or the row is too short
func (c ColumnMap) Value(row []string, role Role) string {
	index, exists := c[role]
	if !exists || index >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[index])
}
