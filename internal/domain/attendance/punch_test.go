package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/training-attendance/internal/pkg/message"
)

func TestParsePunchType(t *testing.T) {
	pt, err := ParsePunchType("in")
	require.NoError(t, err)
	assert.Equal(t, PunchIn, pt)

	pt, err = ParsePunchType("out")
	require.NoError(t, err)
	assert.Equal(t, PunchOut, pt)

	_, err = ParsePunchType("lunch")
	assert.ErrorIs(t, err, ErrInvalidPunchType)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateNoPunch, StateOf(nil))
	assert.Equal(t, StateNoPunch, StateOf(&Record{}))
	assert.Equal(t, StateNoPunch, StateOf(&Record{TrainingEndTime: "18:00"}))
	assert.Equal(t, StatePunchedIn, StateOf(&Record{TrainingStartTime: "09:00"}))
	assert.Equal(t, StatePunchedOut, StateOf(&Record{TrainingStartTime: "09:00", TrainingEndTime: "18:00"}))
}

func TestCheckTransition(t *testing.T) {
	msg := testCatalog(t)
	now := time.Date(2024, 4, 1, 17, 45, 30, 0, time.UTC)

	tests := []struct {
		name    string
		pt      PunchType
		rec     *Record
		wantKey string
	}{
		{name: "in without record", pt: PunchIn},
		{name: "in over empty record", pt: PunchIn, rec: &Record{}},
		{name: "in twice", pt: PunchIn, rec: &Record{TrainingStartTime: "09:00"}, wantKey: message.KeyPunchAlreadyExists},
		{name: "out without record", pt: PunchOut, wantKey: message.KeyPunchInEmpty},
		{name: "out without start", pt: PunchOut, rec: &Record{}, wantKey: message.KeyPunchInEmpty},
		{name: "out after in", pt: PunchOut, rec: &Record{TrainingStartTime: "09:15"}},
		{name: "out in the same minute", pt: PunchOut, rec: &Record{TrainingStartTime: "17:45"}},
		{name: "out twice", pt: PunchOut, rec: &Record{TrainingStartTime: "09:00", TrainingEndTime: "17:00"}, wantKey: message.KeyPunchAlreadyExists},
		{name: "out before start", pt: PunchOut, rec: &Record{TrainingStartTime: "18:00"}, wantKey: message.KeyTrainingTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := CheckTransition(tt.pt, tt.rec, now, msg)
			if tt.wantKey == "" {
				assert.Nil(t, perr)
				return
			}
			require.NotNil(t, perr)
			assert.Equal(t, tt.wantKey, perr.Key)
			assert.NotEmpty(t, perr.Error())
		})
	}
}

func TestCheckTransition_PunchInEmptyMessage(t *testing.T) {
	msg := testCatalog(t)

	perr := CheckTransition(PunchOut, nil, time.Now(), msg)
	require.NotNil(t, perr)
	assert.Equal(t, "End time cannot be entered because there is no punch-in record.", perr.Message)
	assert.False(t, perr.IsAuthorization())
}
