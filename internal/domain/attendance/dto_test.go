package attendance

import (
	"testing"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceRequest_Validate_Success(t *testing.T) {
	req := MarkAttendanceRequest{
		EmployeeID: "64f1b2c3d4e5f6a7b8c9d0e1",
		Date:       "2024-01-10",
		Status:     "Present",
	}
	assert.NoError(t, req.Validate())
}

func TestMarkAttendanceRequest_Validate_RequiredFields(t *testing.T) {
	req := MarkAttendanceRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "employee_id")
	assert.Contains(t, details, "date")
	assert.Contains(t, details, "status")
}
