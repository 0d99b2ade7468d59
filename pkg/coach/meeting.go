package coach

// Meeting describes a scheduled account visit the rep is preparing for.
type Meeting struct {
	ID            string   `json:"id"`
	AccountName   string   `json:"accountName"`
	Time          string   `json:"time"`
	StartTime     string   `json:"startTime"`
	Status        string   `json:"status"`
	Objective     string   `json:"objective"`
	CurrentIssues []string `json:"currentIssues"`
}

// MeetingNotes holds the four preparation sections. Every field is populated
// on a successful generateMeetingPrep call; callers merging with prior state
// own that logic.
type MeetingNotes struct {
	CustomerInfo       string `json:"customerInfo"`
	AnalyzePerformance string `json:"analyzePerformance"`
	SetObjectives      string `json:"setObjectives"`
	PrepareMaterials   string `json:"prepareMaterials"`
}
