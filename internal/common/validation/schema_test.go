package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsightListSchema(t *testing.T) {
	valid := `[{"type":"Promotion","title":"T","description":"D","prompt":"P"}]`
	assert.NoError(t, ValidateJSON(InsightListSchema, []byte(valid)))

	assert.NoError(t, ValidateJSON(InsightListSchema, []byte(`[]`)))

	badType := `[{"type":"Discount","title":"T","description":"D","prompt":"P"}]`
	assert.Error(t, ValidateJSON(InsightListSchema, []byte(badType)))

	missingField := `[{"type":"Risk","title":"T","description":"D"}]`
	assert.Error(t, ValidateJSON(InsightListSchema, []byte(missingField)))

	notArray := `{"type":"Risk"}`
	assert.Error(t, ValidateJSON(InsightListSchema, []byte(notArray)))
}

func TestMeetingNotesSchema(t *testing.T) {
	valid := `{"customerInfo":"a","analyzePerformance":"b","setObjectives":"c","prepareMaterials":"d"}`
	assert.NoError(t, ValidateJSON(MeetingNotesSchema, []byte(valid)))

	missing := `{"customerInfo":"a"}`
	assert.Error(t, ValidateJSON(MeetingNotesSchema, []byte(missing)))

	wrongType := `{"customerInfo":1,"analyzePerformance":"b","setObjectives":"c","prepareMaterials":"d"}`
	assert.Error(t, ValidateJSON(MeetingNotesSchema, []byte(wrongType)))
}

func TestValidateJSONRejectsInvalidDocument(t *testing.T) {
	assert.Error(t, ValidateJSON(MeetingNotesSchema, []byte(`{broken`)))
}
