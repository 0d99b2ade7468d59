package provider

import (
	"bytes"
	"encoding/json"
	"fmt"

	"salescoach-api/internal/common/validation"
	"salescoach-api/pkg/coach"
)

// decodeInsights parses vendor insight JSON. The text may be a bare array or
// an object wrapping it under "insights" or "data"; an object with neither
// key decodes to an empty list. Whatever array is found must pass schema
// validation before it is trusted.
func decodeInsights(raw []byte) ([]coach.CoachInsight, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []coach.CoachInsight{}, nil
	}

	arr := json.RawMessage(trimmed)
	if trimmed[0] != '[' {
		var wrapper struct {
			Insights json.RawMessage `json:"insights"`
			Data     json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("parse insight response: %w", err)
		}

		switch {
		case isPresent(wrapper.Insights):
			arr = wrapper.Insights
		case isPresent(wrapper.Data):
			arr = wrapper.Data
		default:
			return []coach.CoachInsight{}, nil
		}
	}

	if err := validation.ValidateJSON(validation.InsightListSchema, arr); err != nil {
		return nil, err
	}

	var insights []coach.CoachInsight
	if err := json.Unmarshal(arr, &insights); err != nil {
		return nil, fmt.Errorf("parse insight list: %w", err)
	}
	return insights, nil
}

// decodeMeetingNotes parses vendor meeting-prep JSON, requiring all four
// sections to be present.
func decodeMeetingNotes(raw []byte) (coach.MeetingNotes, error) {
	if err := validation.ValidateJSON(validation.MeetingNotesSchema, bytes.TrimSpace(raw)); err != nil {
		return coach.MeetingNotes{}, err
	}

	var notes coach.MeetingNotes
	if err := json.Unmarshal(raw, &notes); err != nil {
		return coach.MeetingNotes{}, fmt.Errorf("parse meeting notes: %w", err)
	}
	return notes, nil
}

func isPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
