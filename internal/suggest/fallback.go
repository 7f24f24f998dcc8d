package suggest

import "strings"

// maxSuggestions caps every suggestion list returned to the client.
const maxSuggestions = 10

// commonPositions backs position autocomplete when the suggestions API is
// unreachable or unconfigured.
var commonPositions = []string{
	"Software Developer",
	"Software Engineer",
	"Full Stack Developer",
	"Frontend Developer",
	"Backend Developer",
	"Mobile Developer",
	"DevOps Engineer",
	"Data Scientist",
	"Data Analyst",
	"Data Engineer",
	"Machine Learning Engineer",
	"AI Engineer",
	"Product Manager",
	"Project Manager",
	"UI/UX Designer",
	"Graphic Designer",
	"Web Designer",
	"Business Analyst",
	"Quality Assurance Engineer",
	"QA Tester",
	"System Administrator",
	"Network Engineer",
	"Security Engineer",
	"Cloud Engineer",
	"Database Administrator",
	"Technical Writer",
	"Scrum Master",
	"Marketing Manager",
	"Sales Manager",
	"Customer Success Manager",
}

// commonDegrees backs degree autocomplete the same way.
var commonDegrees = []string{
	"Bachelor of Science (BSc)",
	"Bachelor of Arts (BA)",
	"Bachelor of Engineering (BEng)",
	"Bachelor of Technology (BTech)",
	"Bachelor of Computer Science (BCS)",
	"Bachelor of Business Administration (BBA)",
	"Bachelor of Commerce (BCom)",
	"Bachelor of Laws (LLB)",
	"Bachelor of Medicine, Bachelor of Surgery (MBBS)",
	"Master of Science (MSc)",
	"Master of Arts (MA)",
	"Master of Business Administration (MBA)",
	"Master of Engineering (MEng)",
	"Master of Technology (MTech)",
	"Doctor of Philosophy (PhD)",
	"Doctor of Medicine (MD)",
	"Diploma in Engineering",
	"Diploma in Computer Science",
	"Higher National Diploma (HND)",
	"Associate of Science (AS)",
}

// FallbackPositions filters the built-in position list by substring match.
// An empty query yields no suggestions.
func FallbackPositions(query string) []string {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return []string{}
	}
	matches := []string{}
	for _, p := range commonPositions {
		if strings.Contains(strings.ToLower(p), query) {
			matches = append(matches, p)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}

// FallbackDegrees filters the built-in degree list. Unlike positions, an
// empty query or a query with no matches returns the top common degrees so
// the dropdown is never blank.
func FallbackDegrees(query string) []string {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return firstStrings(commonDegrees, maxSuggestions)
	}
	matches := []string{}
	for _, d := range commonDegrees {
		if strings.Contains(strings.ToLower(d), query) {
			matches = append(matches, d)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	if len(matches) == 0 {
		return firstStrings(commonDegrees, maxSuggestions)
	}
	return matches
}

func firstStrings(values []string, n int) []string {
	if len(values) <= n {
		out := make([]string, len(values))
		copy(out, values)
		return out
	}
	out := make([]string, n)
	copy(out, values[:n])
	return out
}
