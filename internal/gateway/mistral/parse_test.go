package mistral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList_StripsBulletsAndBlankLines(t *testing.T) {
	got := parseList("- Paris\n- Lyon\n\n-  Nice ")
	assert.Equal(t, []string{"Paris", "Lyon", "Nice"}, got)
}

func TestParseList_PreservesOrder(t *testing.T) {
	got := parseList("- Alabama\n- Alaska\n- Arizona")
	assert.Equal(t, []string{"Alabama", "Alaska", "Arizona"}, got)
}

func TestParseList_NoBullets(t *testing.T) {
	got := parseList("Texas\nUtah")
	assert.Equal(t, []string{"Texas", "Utah"}, got)
}

func TestParseList_EmptyInput(t *testing.T) {
	assert.Empty(t, parseList(""))
	assert.Empty(t, parseList("\n \n\t\n"))
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "All", displayLabel("all"))
	assert.Equal(t, "Beaches", displayLabel("beaches"))
	assert.Equal(t, "Historical", displayLabel("historical"))
}
