package provider

import (
	"fmt"
	"strings"

	"salescoach-api/pkg/coach"
)

const (
	maxInsightRecords     = 20
	maxChatContextRecords = 30

	// chatFallback is returned when the vendor responds with no content.
	chatFallback = "Sorry, I could not generate a response."

	coachPersona = "You are an expert AI Sales Coach for Heineken sales representatives. " +
		"Your goal is to help them analyze their sales data, prepare for meetings, and improve their sales strategy. " +
		"Be concise, insightful, and always professional. Use the provided sales data to answer questions."
)

// insightsPrompt builds the coaching-insights prompt from at most the first
// 20 sales records.
func insightsPrompt(salesData []coach.SalesRecord) string {
	lines := make([]string, 0, maxInsightRecords)
	for i, r := range salesData {
		if i >= maxInsightRecords {
			break
		}
		lines = append(lines, fmt.Sprintf("Account: %s, Brand: %s, Quantity: %v HLs", r.AccountName, r.Brand, r.QtyHL))
	}

	return fmt.Sprintf(`Based on the following recent sales data, generate 3-5 concise coaching insights for a Heineken sales representative. For each insight, provide a type, a short title, a one-sentence description, and a prompt for the user to ask for more details.

Sales Data:
%s

The insight 'type' must be one of: 'Upsell', 'Risk', 'Promotion', 'Performance', 'Opportunity'.
The 'title' should be a catchy headline.
The 'description' should be a single, actionable sentence.
The 'prompt' should be a question the sales rep can ask the AI to elaborate on the insight.`, strings.Join(lines, "\n"))
}

// chatSystemInstruction embeds the coach persona plus a context summary of at
// most the first 30 sales records.
func chatSystemInstruction(salesData []coach.SalesRecord) string {
	lines := make([]string, 0, maxChatContextRecords)
	for i, r := range salesData {
		if i >= maxChatContextRecords {
			break
		}
		lines = append(lines, fmt.Sprintf("- Account: %s, Brand: %s, Quantity: %v HLs, Date: %s", r.AccountName, r.Brand, r.QtyHL, r.TransDate))
	}

	return coachPersona + "\nHere is a summary of the sales data for context:\n" + strings.Join(lines, "\n")
}

// meetingPrepPrompt builds the meeting-preparation prompt. Sales records are
// filtered to the meeting's account; with no match a fixed "no data" sentence
// goes into the prompt instead of failing.
func meetingPrepPrompt(meeting coach.Meeting, salesData []coach.SalesRecord) string {
	var lines []string
	for _, r := range salesData {
		if r.AccountName == meeting.AccountName {
			lines = append(lines, fmt.Sprintf("- %s: %s - %v HLs", r.TransDate, r.Brand, r.QtyHL))
		}
	}

	salesSummary := "No recent sales data found for this account."
	if len(lines) > 0 {
		salesSummary = "Recent sales data for this account:\n" + strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`I am a Heineken sales representative preparing for a meeting with "%s".
My objective is: "%s".
Known issues are: "%s".

Here is the recent sales data for this account:
%s

Please generate preparation notes for the following four sections:
1.  **Customer Info**
2.  **Analyze Performance**
3.  **Set Objectives**
4.  **Prepare Materials**

For each section, provide a concise summary as a single string, using bullet points with markdown ('•').`,
		meeting.AccountName, meeting.Objective, strings.Join(meeting.CurrentIssues, ", "), salesSummary)
}
