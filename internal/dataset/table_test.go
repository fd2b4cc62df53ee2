package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain yes", "Yes", true},
		{"lowercase", "yes", true},
		{"uppercase", "YES", true},
		{"padded", "  yes  ", true},
		{"mixed case padded", " YeS\t", true},
		{"plain no", "No", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"unexpected value", "maybe", false},
		{"prefix is not enough", "yes please", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YesNo(tt.input))
		})
	}
}

func TestTableAvailable(t *testing.T) {
	table := &Table{Columns: []string{"App_Name", "Category", "Nb_Trackers"}}

	got := table.Available([]string{"Nb_Trackers", "Missing", "App_Name"})
	assert.Equal(t, []string{"Nb_Trackers", "App_Name"}, got, "order of the request is preserved")

	assert.Nil(t, table.Available([]string{"Missing", "AlsoMissing"}))
}

func TestTableFloats(t *testing.T) {
	table := &Table{
		Columns: []string{"App_Name", "Nb_Trackers"},
		Rows: [][]string{
			{"Uber", "12"},
			{"Lime", "4.5"},
			{"Bixi", ""},
			{"Transit", "n/a"},
			{"STM", "1,204"},
		},
	}

	values := table.Floats("Nb_Trackers")
	require.Len(t, values, 5)
	assert.Equal(t, 12.0, values[0])
	assert.Equal(t, 4.5, values[1])
	assert.True(t, math.IsNaN(values[2]), "empty cell parses to NaN")
	assert.True(t, math.IsNaN(values[3]), "non-numeric cell parses to NaN")
	assert.Equal(t, 1204.0, values[4], "thousands separators are tolerated")

	assert.Nil(t, table.Floats("Missing"))
}

func TestTableStringsPadsShortRows(t *testing.T) {
	table := &Table{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"1", "2"}, {"3"}},
	}

	assert.Equal(t, []string{"2", ""}, table.Strings("B"))
}

func TestTableBools(t *testing.T) {
	table := &Table{
		Columns: []string{"Uses_Camera"},
		Rows:    [][]string{{"Yes"}, {"no"}, {"YES"}, {""}},
	}

	assert.Equal(t, []bool{true, false, true, false}, table.Bools("Uses_Camera"))
}
