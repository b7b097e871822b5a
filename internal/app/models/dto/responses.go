package dto

// MutationResponse is the uniform body of every create/update/delete
// endpoint and of authentication failures.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListResponse is the body of every list and search endpoint. TotalCount is
// the number of rows matching the filter or search predicate with no
// pagination applied.
type ListResponse struct {
	Rows       any   `json:"rows"`
	TotalCount int64 `json:"totalCount"`
}

// CollegeRow is a college listing row.
type CollegeRow struct {
	CollegeCode string `json:"college_code" db:"college_code"`
	CollegeName string `json:"college_name" db:"college_name"`
}

// ProgramRow is a program listing row, denormalized with the owning
// college's name.
type ProgramRow struct {
	ProgramCode string `json:"program_code" db:"program_code"`
	ProgramName string `json:"program_name" db:"program_name"`
	CollegeCode string `json:"college_code" db:"college_code"`
	CollegeName string `json:"college_name" db:"college_name"`
}

// StudentRow is a student listing row, denormalized with program and
// college names.
type StudentRow struct {
	IDNumber    string  `json:"id_number" db:"id_number"`
	FirstName   string  `json:"first_name" db:"first_name"`
	MiddleName  *string `json:"middle_name" db:"middle_name"`
	LastName    string  `json:"last_name" db:"last_name"`
	Gender      string  `json:"gender" db:"gender"`
	YearLevel   int     `json:"year_level" db:"year_level"`
	ProgramName string  `json:"program_name" db:"program_name"`
	CollegeName string  `json:"college_name" db:"college_name"`
	ProgramCode string  `json:"program_code" db:"program_code"`
}
