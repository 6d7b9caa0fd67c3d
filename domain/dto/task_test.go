package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTimeLayouts(t *testing.T) {
	cases := map[string]time.Time{
		`"2024-01-01T10:30:00Z"`:      time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		`"2024-01-01T10:30:00+02:00"`: time.Date(2024, 1, 1, 10, 30, 0, 0, time.FixedZone("", 2*3600)),
		`"2024-01-01T10:30:00"`:       time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		`"2024-01-01T10:30"`:          time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		`"2024-01-01"`:                time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for input, want := range cases {
		var ft FlexTime
		err := json.Unmarshal([]byte(input), &ft)
		require.NoError(t, err, input)
		assert.True(t, ft.Equal(want), "input %s parsed to %s", input, ft.Time)
	}
}

func TestFlexTimeRejectsMalformed(t *testing.T) {
	for _, input := range []string{
		`"yesterday"`,
		`"2024-13-01T10:30"`,
		`"01/01/2024"`,
	} {
		var ft FlexTime
		assert.Error(t, json.Unmarshal([]byte(input), &ft), input)
	}
}

func TestFlexTimeNull(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte("null"), &ft))
	assert.True(t, ft.IsZero())
}

func TestFlexTimeRejectsNonString(t *testing.T) {
	var ft FlexTime
	assert.Error(t, json.Unmarshal([]byte("12345"), &ft))
}

func TestFlexTimeInStruct(t *testing.T) {
	var req CreateTaskRequest
	payload := `{"title":"Buy milk","startTime":"2024-01-01T00:00","endTime":"2024-01-02T00:00","priority":2,"status":"Pending"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	require.NotNil(t, req.StartTime)
	require.NotNil(t, req.EndTime)
	assert.True(t, req.StartTime.Before(req.EndTime.Time))
}
