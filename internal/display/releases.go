// Package display renders collected releases for the terminal or as NDJSON.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/gnomegl/relslurp/internal/models"
)

const noteLimit = 200

// Releases prints a colorized per-repository listing. Records are expected
// in repository encounter order, which the assembler guarantees.
func Releases(releases []models.Release, showNotes bool) {
	if len(releases) == 0 {
		color.Yellow("No releases published in the requested window")
		return
	}

	current := ""
	for _, rel := range releases {
		if rel.Repository != current {
			current = rel.Repository
			color.HiGreen("\n📦 %s", current)
		}

		line := "  " + rel.Name
		if rel.TagName != "" && rel.TagName != rel.Name {
			line += fmt.Sprintf(" (%s)", rel.TagName)
		}
		if rel.Prerelease {
			color.Yellow("%s [pre-release]", line)
		} else {
			color.White(line)
		}

		color.Blue("    🔗 %s", rel.URL)
		fmt.Printf("    👤 %s  🕒 %s\n", rel.Author, rel.PublishedAt)

		if showNotes && rel.Description != "" {
			fmt.Printf("    %s\n", snippet(rel.Description))
		}
	}

	color.HiCyan("\nTotal releases: %d", len(releases))
}

// WriteNDJSON writes one JSON object per release, one per line
func WriteNDJSON(w io.Writer, releases []models.Release) error {
	enc := json.NewEncoder(w)
	for _, rel := range releases {
		if err := enc.Encode(rel); err != nil {
			return err
		}
	}
	return nil
}

func snippet(body string) string {
	body = strings.TrimSpace(body)
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[:i]
	}
	if len(body) > noteLimit {
		body = body[:noteLimit] + "…"
	}
	return body
}
