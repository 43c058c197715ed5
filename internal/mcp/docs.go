package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/scholarships/internal/view"
)

const serverInstructions = `scholarships serves a small, read-only table of SCU scholarships with due dates.

Core concepts:
- Scholarship: name, due date (YYYY-MM-DD), free-text summary. Names may repeat; there are no IDs.
- Calendar: records grouped by due date. Looking up a date with nothing due returns an empty list, never an error.
- Profile: the student intake form. It is validated per call and never stored.
- Recommendation: free text from an external generator. When the generator fails or times out the result is
  "unavailable" with a fixed message; that is not an error.

Typical workflow:
1) Browse: list_scholarships, search_scholarships, or upcoming_deadlines.
2) Calendar: get_calendar for a month, then lookup_date for a clicked day.
3) Profile: profile_options for allowed values, then recommend or render_view(view="find", submitted=true).
4) Pages: render_view renders any of home, find, calendar, statistics, about.

Docs:
- scholarships://docs/about
- scholarships://docs/tips
- scholarships://docs/views
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "scholarships://docs/about",
		Name:        "docs_about",
		Title:       "About SCU Scholarship Finder",
		Description: "What the service is for and what it offers.",
		Content:     aboutDoc(),
	},
	{
		URI:         "scholarships://docs/tips",
		Name:        "docs_tips",
		Title:       "Scholarship tips",
		Description: "Application advice and useful SCU links.",
		Content:     tipsDoc(),
	},
	{
		URI:         "scholarships://docs/views",
		Name:        "docs_views",
		Title:       "Pages and their inputs",
		Description: "The pages render_view can produce and which arguments each one reads.",
		Content: `# Pages

| view | reads | returns |
|---|---|---|
| home | nothing | welcome text, quick links, tips |
| find | profile, submitted, recommend | form options; after submit the confirmation message and optional recommendation |
| calendar | month or view_start, date | month grid, event feed, all scholarships, selected date details |
| statistics | nothing | fixed share table |
| about | nothing | description and features |

Calendar details panel:
- no date selected: "` + view.NoSelectionMessage + `"
- a date with nothing due: "No scholarships due on YYYY-MM-DD."
`,
	},
}

func aboutDoc() string {
	page, _ := view.Render(view.State{View: view.About}, nil)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n## Features\n\n", page.Title, page.About.Description)
	for _, feature := range page.About.Features {
		fmt.Fprintf(&b, "- %s\n", feature)
	}
	fmt.Fprintf(&b, "\n[%s](%s)\n", page.About.FinancialAid.Title, page.About.FinancialAid.URL)
	return b.String()
}

func tipsDoc() string {
	var b strings.Builder
	b.WriteString("# Scholarship Tips\n\n")
	for _, tip := range view.Tips() {
		fmt.Fprintf(&b, "- **%s**: %s\n", tip.Title, tip.Body)
	}
	b.WriteString("\n## Quick Links\n\n")
	for _, link := range view.QuickLinks() {
		fmt.Fprintf(&b, "- [%s](%s)\n", link.Title, link.URL)
	}
	return b.String()
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
