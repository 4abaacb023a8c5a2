package types

// RuleStatus is the outcome of a single conformance check.
type RuleStatus string

// Rule status values. WARNING marks soft requirements that should not block
// acceptance of a generated icon.
const (
	StatusPass RuleStatus = "PASS"
	StatusFail RuleStatus = "FAIL"
	StatusWarn RuleStatus = "WARNING"
)

// ValidationRule is one entry of an SVG conformance report: a human-readable
// rule label, its status and an explanation. A report is an ordered slice of
// these, the order matching the fixed check sequence.
type ValidationRule struct {
	Rule    string     `json:"rule"`
	Status  RuleStatus `json:"status"`
	Message string     `json:"message"`
}

// ReportSummary aggregates a conformance report by status.
type ReportSummary struct {
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Warnings int `json:"warnings"`
}

// Summarize counts the report entries by status.
func Summarize(report []ValidationRule) ReportSummary {
	var s ReportSummary
	for _, r := range report {
		switch r.Status {
		case StatusPass:
			s.Passed++
		case StatusFail:
			s.Failed++
		case StatusWarn:
			s.Warnings++
		}
	}
	return s
}
