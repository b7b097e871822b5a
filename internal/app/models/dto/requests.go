package dto

// Mutation request bodies. Update requests use pointer fields so that an
// absent key, an explicit empty value and a set value are distinguishable:
// only fields present in the JSON body are applied.

// LoginRequest carries the credentials for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AddCollegeRequest is the body of POST /api/colleges/add.
type AddCollegeRequest struct {
	CollegeCode string `json:"college_code"`
	CollegeName string `json:"college_name"`
}

// UpdateCollegeRequest is the body of PUT /api/colleges/update.
type UpdateCollegeRequest struct {
	CollegeCode    string  `json:"college_code"`
	NewCollegeName *string `json:"new_college_name"`
}

// DeleteCollegeRequest is the body of DELETE /api/colleges/delete.
type DeleteCollegeRequest struct {
	CollegeCode string `json:"college_code"`
}

// AddProgramRequest is the body of POST /api/programs/add.
type AddProgramRequest struct {
	ProgramCode string `json:"program_code"`
	ProgramName string `json:"program_name"`
	CollegeCode string `json:"college_code"`
}

// UpdateProgramRequest is the body of PUT /api/programs/update.
type UpdateProgramRequest struct {
	ProgramCode    string  `json:"program_code"`
	NewProgramName *string `json:"new_program_name"`
	NewCollegeCode *string `json:"new_college_code"`
}

// DeleteProgramRequest is the body of DELETE /api/programs/delete.
type DeleteProgramRequest struct {
	ProgramCode string `json:"program_code"`
}

// AddStudentRequest is the body of POST /api/students/add.
type AddStudentRequest struct {
	IDNumber    string `json:"id_number"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	YearLevel   int    `json:"year_level"`
	ProgramCode string `json:"program_code"`
}

// UpdateStudentRequest is the body of PUT /api/students/update.
type UpdateStudentRequest struct {
	IDNumber       string  `json:"id_number"`
	NewFirstName   *string `json:"new_first_name"`
	NewMiddleName  *string `json:"new_middle_name"`
	NewLastName    *string `json:"new_last_name"`
	NewGender      *string `json:"new_gender"`
	NewYearLevel   *int    `json:"new_year_level"`
	NewProgramCode *string `json:"new_program_code"`
}

// DeleteStudentRequest is the body of DELETE /api/students/delete.
type DeleteStudentRequest struct {
	IDNumber string `json:"id_number"`
}
