package curriculum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

const weekYAML = `
id: standard-week
name: Standard week
slots:
  - weekday: monday
    start_time: "09:00"
    end_time: "12:00"
    venue: Lecture Room
    activity: lecture
  - weekday: Mon
    start_time: "13:00"
    end_time: "15:00"
    venue: Workshop
    activity: practical
  - weekday: thursday
    start_time: "09:00"
    end_time: "16:00"
    venue: Host employer
`

func TestParseTemplate(t *testing.T) {
	tpl, err := ParseTemplate([]byte(weekYAML))
	require.NoError(t, err)

	assert.Equal(t, "standard-week", tpl.ID)
	require.Len(t, tpl.Slots[time.Monday], 2)
	assert.Equal(t, "Workshop", tpl.Slots[time.Monday][1].Venue)
	assert.Equal(t, domain.ActivityPractical, tpl.Slots[time.Monday][1].Activity)
	require.Len(t, tpl.Slots[time.Thursday], 1)
	assert.Equal(t, domain.ActivityLecture, tpl.Slots[time.Thursday][0].Activity, "activity defaults to lecture")
}

func TestParseTemplate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"bad weekday", "id: t\nname: T\nslots:\n  - {weekday: funday, start_time: '09:00', end_time: '10:00', venue: R}\n", "slots[0].weekday"},
		{"bad clock", "id: t\nname: T\nslots:\n  - {weekday: monday, start_time: 9am, end_time: '10:00', venue: R}\n", "slots[0].start_time"},
		{"missing venue", "id: t\nname: T\nslots:\n  - {weekday: monday, start_time: '09:00', end_time: '10:00'}\n", "slots[0].venue"},
		{"bad activity", "id: t\nname: T\nslots:\n  - {weekday: monday, start_time: '09:00', end_time: '10:00', venue: R, activity: party}\n", "slots[0].activity"},
		{"end before start", "id: t\nname: T\nslots:\n  - {weekday: monday, start_time: '11:00', end_time: '10:00', venue: R}\n", "slots[Monday][0].end_time"},
		{"no slots", "id: t\nname: T\n", "slots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate([]byte(tt.yaml))
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}
