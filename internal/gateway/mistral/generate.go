package mistral

import (
	"context"
	"fmt"
	"strings"
)

const (
	maxStates = 50
	maxPlaces = 10

	statesPrompt = "List all 50 US states in bullet points in English."
)

// Categories maps the accepted search categories to their page display
// labels. Anything outside this set falls back to "all".
var Categories = map[string]string{
	"all":        "All Categories",
	"mountains":  "Mountains",
	"parks":      "Parks",
	"museums":    "Museums",
	"temples":    "Temples",
	"beaches":    "Beaches",
	"historical": "Historical Sites",
}

var categoryPrompts = map[string]string{
	"all":        "List 10 famous tourist places in %s in bullet points in English.",
	"mountains":  "List 10 famous mountains in %s in bullet points in English.",
	"parks":      "List 10 famous parks or nature spots in %s in bullet points in English.",
	"museums":    "List 10 famous museums in %s in bullet points in English.",
	"temples":    "List 10 famous temples or religious sites in %s in bullet points in English.",
	"beaches":    "List 10 famous beaches in %s in bullet points in English.",
	"historical": "List 10 famous historical sites in %s in bullet points in English.",
}

type Place struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// StatesResult is the outcome of ListStates. Degraded marks an empty
// list that stands in for an upstream failure, as opposed to a healthy
// reply that happened to contain nothing.
type StatesResult struct {
	States   []string
	Degraded bool
}

type PlacesResult struct {
	Places   []Place
	Degraded bool
}

// ListStates asks the generator for the US state list. It never fails:
// on any upstream problem the result is empty and marked degraded.
func (c *Client) ListStates(ctx context.Context) StatesResult {
	text, ok := c.complete(ctx, statesPrompt)
	if !ok {
		return StatesResult{States: []string{}, Degraded: true}
	}

	states := parseList(text)
	if len(states) > maxStates {
		states = states[:maxStates]
	}
	return StatesResult{States: states}
}

// ListPlaces asks the generator for famous places in a state. Unknown
// categories behave exactly like "all". Same degrade policy as ListStates.
func (c *Client) ListPlaces(ctx context.Context, state, category string) PlacesResult {
	tmpl, ok := categoryPrompts[category]
	if !ok {
		category = "all"
		tmpl = categoryPrompts["all"]
	}

	text, ok := c.complete(ctx, fmt.Sprintf(tmpl, state))
	if !ok {
		return PlacesResult{Places: []Place{}, Degraded: true}
	}

	label := displayLabel(category)
	lines := parseList(text)
	if len(lines) > maxPlaces {
		lines = lines[:maxPlaces]
	}

	places := make([]Place, 0, len(lines))
	for _, name := range lines {
		places = append(places, Place{Name: name, Category: label})
	}
	return PlacesResult{Places: places}
}

func displayLabel(category string) string {
	if category == "all" {
		return "All"
	}
	return strings.ToUpper(category[:1]) + category[1:]
}
