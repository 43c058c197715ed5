package view

// Link is a titled URL.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Tip is one scholarship tip.
type Tip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Share is one row of the statistics table.
type Share struct {
	Category string `json:"category"`
	Percent  int    `json:"percent"`
}

const (
	homeTitle    = "🎓 Welcome to SCU Scholarship Finder!"
	homeGreeting = "Hello!👋"
	homeIntro    = "Discover scholarships tailored for Santa Clara University students. " +
		"Use this platform to explore funding opportunities, get personalized recommendations, and plan for upcoming deadlines."

	aboutTitle       = "ℹ️ About This App"
	aboutDescription = "SCU Scholarship Finder is designed to assist Santa Clara University students in finding and applying for scholarships."
	aboutFooter      = "Built with ❤️ for SCU students."

	statisticsTitle = "📊 Scholarship Statistics"
	statisticsIntro = "Explore trends and insights related to SCU scholarships."

	findTitle     = "🎓 Find Scholarships"
	calendarTitle = "📅 Scholarship Calendar"

	// NoSelectionMessage is shown in the details panel before a date is clicked.
	NoSelectionMessage = "Click on a date in the calendar to view details."
)

// FinancialAidOffice is the financial aid office link shown on home and about.
var FinancialAidOffice = Link{Title: "SCU Financial Aid Office", URL: "https://www.scu.edu/financialaid/"}

// QuickLinks returns the home page links.
func QuickLinks() []Link {
	return []Link{
		FinancialAidOffice,
		{Title: "SCU Financial Aid Deadlines", URL: "https://www.scu.edu/financialaid/deadlines/"},
		{Title: "SCU Career Center", URL: "https://www.scu.edu/careercenter/"},
	}
}

// Tips returns the home page scholarship tips.
func Tips() []Tip {
	return []Tip{
		{Title: "Start Early", Body: "Begin your search and application process well in advance of deadlines."},
		{Title: "Tailor Your Applications", Body: "Customize essays and responses to match each scholarship's requirements."},
		{Title: "Leverage SCU Resources", Body: "Reach out to the financial aid office or academic advisors for guidance."},
	}
}

// Features returns the about page feature list.
func Features() []string {
	return []string{
		"Explore SCU-specific scholarships.",
		"View calendar with scholarship due dates and details.",
		"View simple statistics on funding opportunities.",
		"Receive tailored recommendations based on your profile.",
	}
}

// Shares returns the statistics table. The figures are fixed, not computed
// from the loaded records.
func Shares() []Share {
	return []Share{
		{Category: "Merit-Based Scholarships", Percent: 30},
		{Category: "Need-Based Scholarships", Percent: 20},
		{Category: "Diversity Scholarships", Percent: 15},
		{Category: "Graduate Aid", Percent: 10},
	}
}
