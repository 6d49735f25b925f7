package parser

import (
	"regexp"
	"strings"
	"time"
)

// ParsedEntry represents an event or todo parsed from natural language
type ParsedEntry struct {
	Title    string
	Tags     []string
	Priority bool
	Time     string // HH:MM for events
	DueDate  *time.Time
	Errors   []string
}

// ParseTitle extracts metadata from an entry title using natural syntax
// Syntax: "Dentist appointment #health,errands ! at:14:30 due:3 days"
//
// Tags only apply to events (the backend has no todo tags) and "!"
// marks an event as priority, the only priority the backend knows.
func ParseTitle(input string) ParsedEntry {
	result := ParsedEntry{
		Title:  input,
		Tags:   []string{},
		Errors: []string{},
	}

	// Extract tags (#tag1,tag2 or #tag1 #tag2)
	tagRegex := regexp.MustCompile(`#([a-zA-Z0-9_,-]+)`)
	tagMatches := tagRegex.FindAllStringSubmatch(input, -1)
	for _, match := range tagMatches {
		if len(match) > 1 {
			// Split by comma in case of #tag1,tag2
			tagGroup := strings.Split(match[1], ",")
			for _, tag := range tagGroup {
				tag = strings.TrimSpace(tag)
				if tag != "" {
					result.Tags = append(result.Tags, tag)
				}
			}
		}
	}
	// Remove from title
	input = tagRegex.ReplaceAllString(input, "")

	// Extract priority flag (a bare "!")
	priorityRegex := regexp.MustCompile(`(^|\s)!(\s|$)`)
	if priorityRegex.MatchString(input) {
		result.Priority = true
		input = priorityRegex.ReplaceAllString(input, " ")
	}

	// Extract start time (at:14:30)
	timeRegex := regexp.MustCompile(`at:(\d{1,2}:\d{2})`)
	timeMatches := timeRegex.FindStringSubmatch(input)
	if len(timeMatches) > 1 {
		if _, err := time.Parse("15:04", normalizeClock(timeMatches[1])); err != nil {
			result.Errors = append(result.Errors, "Invalid time '"+timeMatches[1]+"'. Use 24-hour HH:MM")
		} else {
			result.Time = normalizeClock(timeMatches[1])
		}
		// Remove from title
		input = timeRegex.ReplaceAllString(input, "")
	}

	// Extract due date (due:3 days, due:15/12/2026, etc.)
	dueRegex := regexp.MustCompile(`due:(\d{1,2}/\d{1,2}/\d{4}|\d+\s+(?:hour|hours|day|days|week|weeks))`)
	dueMatches := dueRegex.FindStringSubmatch(input)
	if len(dueMatches) > 1 {
		dueDate, err := ParseDueDate(dueMatches[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+dueMatches[1]+"': "+err.Error())
		} else {
			result.DueDate = dueDate
		}
		// Remove from title
		input = dueRegex.ReplaceAllString(input, "")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.Join(strings.Fields(input), " ")
	result.Title = strings.TrimSpace(result.Title)

	return result
}

// normalizeClock left-pads single-digit hours so "9:30" parses as "09:30"
func normalizeClock(clock string) string {
	if len(clock) == 4 {
		return "0" + clock
	}
	return clock
}
