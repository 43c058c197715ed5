package mcp

// ToolDefinition describes a callable tool
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func emptySchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func intProp(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func profileSchema() map[string]any {
	list := func(description string) map[string]any {
		return map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": description,
		}
	}
	return map[string]any{
		"type":        "object",
		"description": "Student profile. Select values must come from profile_options.",
		"properties": map[string]any{
			"name":              stringProp("Student name"),
			"student_id":        stringProp("SCU student ID"),
			"email":             stringProp("SCU email"),
			"major":             stringProp("Major"),
			"school_year":       stringProp("Year in school"),
			"department":        stringProp("Department"),
			"gpa":               map[string]any{"type": "number", "minimum": 0, "maximum": 4, "description": "GPA in steps of 0.1"},
			"honors":            stringProp("Honors program participant (Yes/No)"),
			"financial_need":    stringProp("Demonstrated financial need (Yes/No)"),
			"fafsa_filed":       stringProp("FAFSA or CA Dream Act filed (Yes/No)"),
			"residency":         stringProp("Residency status"),
			"scholarship_types": list("Preferred scholarship types"),
			"causes":            list("Causes the student cares about"),
		},
	}
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Browsing
		{
			Name:        "list_scholarships",
			Description: "List every loaded scholarship in catalog order",
			InputSchema: emptySchema(),
		},
		{
			Name:        "get_scholarship",
			Description: "Get the scholarships with an exact name (names may repeat)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": stringProp("Exact scholarship name, including any leading symbol"),
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "search_scholarships",
			Description: "Full-text search over scholarship names and summaries; every term must match",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query":  stringProp("Search terms"),
					"limit":  intProp("Maximum results"),
					"offset": intProp("Results to skip"),
				},
				"required": []string{"query"},
			},
		},
		// Calendar
		{
			Name:        "get_calendar",
			Description: "Month grid, event feed and full list for a month (defaults to the current month)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"month":      stringProp("Month as YYYY-MM"),
					"view_start": stringProp("Calendar widget start, e.g. 2024-12-01T00:00:00; used when month is empty"),
				},
			},
		},
		{
			Name:        "lookup_date",
			Description: "Scholarships due on a date; an empty list is not an error",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"date": stringProp("Date as YYYY-MM-DD"),
				},
				"required": []string{"date"},
			},
		},
		{
			Name:        "upcoming_deadlines",
			Description: "Scholarships due from today through the next N days, soonest first",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"days":  intProp("Horizon in days; 0 means no limit (defaults to the server setting)"),
					"today": stringProp("Override today's date (YYYY-MM-DD)"),
				},
			},
		},
		// Pages
		{
			Name:        "render_view",
			Description: "Render a page: home, find, calendar, statistics or about",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"view":       map[string]any{"type": "string", "enum": []string{"home", "find", "calendar", "statistics", "about"}},
					"month":      stringProp("Calendar month as YYYY-MM"),
					"view_start": stringProp("Calendar widget start; used when month is empty"),
					"date":       stringProp("Selected calendar date as YYYY-MM-DD"),
					"profile":    profileSchema(),
					"submitted":  map[string]any{"type": "boolean", "description": "Find form was submitted"},
					"recommend":  map[string]any{"type": "boolean", "description": "Include generated recommendations on a submitted find form"},
				},
				"required": []string{"view"},
			},
		},
		// Profile & recommendations
		{
			Name:        "profile_options",
			Description: "Allowed values for every profile form field",
			InputSchema: emptySchema(),
		},
		{
			Name:        "recommend",
			Description: "Generate free-text scholarship recommendations for a profile. Unavailable results are not errors.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"profile": profileSchema(),
				},
				"required": []string{"profile"},
			},
		},
		// Activity
		{
			Name:        "get_recent_activity",
			Description: "Recent operational events, newest first",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{
						"type": "string",
						"enum": []string{
							"records_loaded", "date_lookup", "recommendation_served",
							"recommendation_unavailable", "export_generated",
						},
					},
					"request_id": stringProp("Recommendation request ID"),
					"limit":      intProp("Maximum entries"),
					"offset":     intProp("Entries to skip"),
				},
			},
		},
	}
}
