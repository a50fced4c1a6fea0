package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traxovo/traxovo/pkg/fleet"
)

func TestParseFileAndRegister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	content := "driver_name,employee_id,depot\n" +
		"Bob Lee,E-100,North\n" +
		"Jane Doe (2211),E-101,North\n" +
		",E-102,South\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{DriverName: "Bob Lee", EmployeeID: "E-100", Depot: "North"}, entries[0])

	registry := fleet.NewRegistry()
	registry.GetOrCreate("janedoe", "Jane Doe")

	assert.Equal(t, 2, Register(registry, entries))
	assert.Equal(t, 2, registry.Len())

	bob := registry.Get("boblee")
	require.NotNil(t, bob)
	assert.Equal(t, "Bob Lee", bob.DisplayName)
	assert.Empty(t, bob.Events)
	assert.Empty(t, bob.DataSources)

	assert.Equal(t, "Jane Doe", registry.Get("janedoe").DisplayName)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
