package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/training-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/training-attendance/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type AttendanceHandler interface {
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetMyEditForm(w http.ResponseWriter, r *http.Request)
	UpdateMyAttendance(w http.ResponseWriter, r *http.Request)
	PunchCheck(w http.ResponseWriter, r *http.Request)
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	GetStudentAttendance(w http.ResponseWriter, r *http.Request)
	GetStudentEditForm(w http.ResponseWriter, r *http.Request)
	UpdateStudentAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.management(w, r, actor.UserID)
}

// GetStudentAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetStudentAttendance(w http.ResponseWriter, r *http.Request) {
	h.management(w, r, chi.URLParam(r, "studentID"))
}

func (h *attendanceHandlerImpl) management(w http.ResponseWriter, r *http.Request, studentID string) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetAttendanceManagement(r.Context(), actor, studentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyEditForm implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyEditForm(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.editForm(w, r, actor.UserID)
}

// GetStudentEditForm implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetStudentEditForm(w http.ResponseWriter, r *http.Request) {
	h.editForm(w, r, chi.URLParam(r, "studentID"))
}

func (h *attendanceHandlerImpl) editForm(w http.ResponseWriter, r *http.Request, studentID string) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	form, err := h.attendanceService.GetEditForm(r.Context(), actor, studentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, form)
}

// UpdateMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateMyAttendance(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.update(w, r, actor.UserID)
}

// UpdateStudentAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateStudentAttendance(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, chi.URLParam(r, "studentID"))
}

func (h *attendanceHandlerImpl) update(w http.ResponseWriter, r *http.Request, studentID string) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var form attendance.EditForm
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		slog.Error("Attendance update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	form.StudentID = studentID

	result, err := h.attendanceService.Update(r.Context(), actor, &form)
	if err != nil {
		response.HandleErrorWithData(w, err, form)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// PunchCheck implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchCheck(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	punchType, err := attendance.ParsePunchType(r.URL.Query().Get("type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.PunchCheck(r.Context(), actor, punchType)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PunchIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.PunchIn(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// PunchOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.PunchOut(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
