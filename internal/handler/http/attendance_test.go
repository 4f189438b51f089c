package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func markTestAttendance(t *testing.T, router http.Handler, employeeID, date, status string) (int, map[string]interface{}) {
	t.Helper()
	rec, body := doJSON(t, router, http.MethodPost, "/api/attendance", map[string]string{
		"employee_id": employeeID,
		"date":        date,
		"status":      status,
	})
	return rec.Code, body
}

func TestAttendanceHandler_Mark(t *testing.T) {
	router := newTestRouter()
	id := createTestEmployee(t, router)

	code, body := markTestAttendance(t, router, id, "2024-01-10", "Present")

	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Attendance marked for John Doe", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, id, data["employee_id"])
	assert.Equal(t, "John Doe", data["employee_name"])
	assert.Equal(t, "2024-01-10", data["date"])
	assert.Equal(t, "Present", data["status"])
	assert.NotEmpty(t, data["marked_at"])
}

func TestAttendanceHandler_Mark_InvalidStatus(t *testing.T) {
	router := newTestRouter()
	id := createTestEmployee(t, router)

	code, body := markTestAttendance(t, router, id, "2024-01-10", "Late")

	require.Equal(t, http.StatusBadRequest, code)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "BAD_REQUEST", errDetail["code"])
	assert.Equal(t, `Status must be either "Present" or "Absent"`, errDetail["message"])
}

func TestAttendanceHandler_Mark_BadEmployeeID(t *testing.T) {
	router := newTestRouter()

	code, _ := markTestAttendance(t, router, "nope", "2024-01-10", "Present")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAttendanceHandler_Mark_EmployeeNotFound(t *testing.T) {
	router := newTestRouter()

	id := primitive.NewObjectID().Hex()
	code, body := markTestAttendance(t, router, id, "2024-01-10", "Present")
	require.Equal(t, http.StatusNotFound, code)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "Employee with ID "+id+" not found", errDetail["message"])
}

func TestAttendanceHandler_List_WithDateFilter(t *testing.T) {
	router := newTestRouter()
	id := createTestEmployee(t, router)

	code, _ := markTestAttendance(t, router, id, "2024-01-10", "Present")
	require.Equal(t, http.StatusCreated, code)
	code, _ = markTestAttendance(t, router, id, "2024-01-11", "Absent")
	require.Equal(t, http.StatusCreated, code)

	rec, body := doJSON(t, router, http.MethodGet, "/api/attendance?date=2024-01-10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	record := data[0].(map[string]interface{})
	assert.Equal(t, "2024-01-10", record["date"])
	assert.Equal(t, "John Doe", record["employee_name"])
	details := record["employee_details"].(map[string]interface{})
	assert.Equal(t, "EMP001", details["employee_id"])
	assert.Equal(t, "Engineering", details["department"])

	rec, body = doJSON(t, router, http.MethodGet, "/api/attendance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["count"])
}

func TestAttendanceHandler_ListByEmployee(t *testing.T) {
	router := newTestRouter()
	id := createTestEmployee(t, router)

	code, _ := markTestAttendance(t, router, id, "2024-01-10", "Present")
	require.Equal(t, http.StatusCreated, code)

	rec, body := doJSON(t, router, http.MethodGet, "/api/attendance/employee/"+id, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(1), body["count"])
	emp := body["employee"].(map[string]interface{})
	assert.Equal(t, id, emp["_id"])
	assert.Equal(t, "EMP001", emp["employee_id"])
	assert.Equal(t, "John Doe", emp["full_name"])
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	record := data[0].(map[string]interface{})
	assert.Equal(t, "2024-01-10", record["date"])
	// trimmed shape: identity already fixed by the employee block
	assert.NotContains(t, record, "employee_name")
}

func TestAttendanceHandler_ListByEmployee_BadID(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodGet, "/api/attendance/employee/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_ListByEmployee_NotFound(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodGet, "/api/attendance/employee/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Full lifecycle: add employee, mark attendance, reject the duplicate,
// delete the employee, and verify the cascade emptied the ledger.
func TestAttendanceLifecycle(t *testing.T) {
	router := newTestRouter()
	id := createTestEmployee(t, router)

	code, _ := markTestAttendance(t, router, id, "2024-01-10", "Present")
	require.Equal(t, http.StatusCreated, code)

	code, body := markTestAttendance(t, router, id, "2024-01-10", "Present")
	require.Equal(t, http.StatusBadRequest, code)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "Attendance already marked for John Doe on 2024-01-10", errDetail["message"])

	rec, _ := doJSON(t, router, http.MethodDelete, "/api/employees/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = doJSON(t, router, http.MethodGet, "/api/attendance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["count"])
	assert.Empty(t, body["data"])
}
