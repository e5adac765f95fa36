package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/training-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/training-attendance/internal/domain/auth"
	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/jwt"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/message"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "validation", err: validator.ValidationErrors{{Field: "email", Message: "bad"}}, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_ERROR"},
		{name: "punch precondition", err: &attendance.PunchError{Key: message.KeyNotWorkDay, Message: "no training today"}, wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "punch by staff", err: &attendance.PunchError{Key: message.KeyAuthorization, Message: "students only"}, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "wrapped punch error", err: fmt.Errorf("punch: %w", &attendance.PunchError{Key: message.KeyPunchAlreadyExists}), wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "credentials", err: auth.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "claims", err: fmt.Errorf("%w: role is missing", jwt.ErrInvalidClaims), wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "other student", err: user.ErrInsufficientPermissions, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "staff only", err: user.ErrStaffAccessRequired, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "unknown student", err: user.ErrStudentNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "duplicate email", err: user.ErrUserEmailExists, wantStatus: http.StatusConflict, wantCode: "CONFLICT"},
		{name: "punch type", err: attendance.ErrInvalidPunchType, wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "student required", err: attendance.ErrStudentRequired, wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "bad date", err: attendance.ErrInvalidTrainingDate, wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "unexpected", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleErrorWithData_AttachesDataToValidationOnly(t *testing.T) {
	rec := httptest.NewRecorder()
	errs := validator.ValidationErrors{{Field: "attendanceList[0].note", Message: "too long"}}
	HandleErrorWithData(rec, errs, map[string]string{"studentId": "s1"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"studentId": "s1"}, body["data"])
	details := body["error"].(map[string]interface{})["details"].(map[string]interface{})
	assert.Equal(t, []interface{}{"too long"}, details["attendanceList[0].note"])

	rec = httptest.NewRecorder()
	HandleErrorWithData(rec, user.ErrStudentNotFound, map[string]string{"studentId": "s1"})
	var notFound map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notFound))
	_, hasData := notFound["data"]
	assert.False(t, hasData)
}

func TestHandleError_ReportsEveryMessagePerField(t *testing.T) {
	msg, err := message.NewCatalog("en")
	require.NoError(t, err)
	row := attendance.DailyEditRow{
		TrainingDate:          "2024-04-01",
		TrainingStartTimeHour: intPtr(9),
		TrainingEndTimeHour:   intPtr(18),
		TrainingEndTimeMinute: intPtr(0),
	}
	errs := attendance.ValidateRows([]attendance.DailyEditRow{row}, msg)
	require.NotEmpty(t, errs)

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, []string{
		"Start time is not entered correctly.",
		"End time cannot be entered because there is no punch-in record.",
	}, body.Error.Details["attendanceList[0].trainingStartTimeMinute"])
}

func intPtr(v int) *int { return &v }
