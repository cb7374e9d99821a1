package recap

import (
	"github.com/annur-digital/rekap-absensi-go/internal/domain/employee"
	"github.com/annur-digital/rekap-absensi-go/internal/domain/schedule"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/validator"
)

// GenerateRequest carries one pipeline invocation's inputs. The service
// treats the slices as an immutable snapshot taken at call time.
type GenerateRequest struct {
	StartDate string
	EndDate   string

	Employees []employee.Employee
	Schedules []schedule.WeeklySchedule
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	// A reversed range is legal and yields an empty date axis.

	if len(errs) > 0 {
		return errs
	}
	return nil
}
