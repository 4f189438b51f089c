package response

import (
	"encoding/json"
	"net/http"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type errorResponse struct {
	Status string      `json:"status"`
	Error  ErrorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := errorResponse{
			Status: statusError,
			Error: ErrorDetail{
				Code:    "ENCODING_ERROR",
				Message: "Failed to encode response",
			},
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses

func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, struct {
		Status string      `json:"status"`
		Data   interface{} `json:"data"`
	}{statusSuccess, data})
}

func SuccessList(w http.ResponseWriter, data interface{}, count int) {
	writeJSON(w, http.StatusOK, struct {
		Status string      `json:"status"`
		Data   interface{} `json:"data"`
		Count  int         `json:"count"`
	}{statusSuccess, data, count})
}

func SuccessMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}{statusSuccess, message})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, struct {
		Status  string      `json:"status"`
		Message string      `json:"message"`
		Data    interface{} `json:"data"`
	}{statusSuccess, message, data})
}

// EmployeeAttendance writes the per-employee attendance listing, which
// carries the employee profile alongside the records.
func EmployeeAttendance(w http.ResponseWriter, employee interface{}, data interface{}, count int) {
	writeJSON(w, http.StatusOK, struct {
		Status   string      `json:"status"`
		Employee interface{} `json:"employee"`
		Data     interface{} `json:"data"`
		Count    int         `json:"count"`
	}{statusSuccess, employee, data, count})
}

// Error responses

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Status: statusError,
		Error: ErrorDetail{
			Code:    "BAD_REQUEST",
			Message: message,
			Details: details,
		},
	})
}

func ValidationFailed(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Status: statusError,
		Error: ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
			Details: details,
		},
	})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Status: statusError,
		Error: ErrorDetail{
			Code:    "NOT_FOUND",
			Message: message,
		},
	})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Status: statusError,
		Error: ErrorDetail{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: message,
		},
	})
}
