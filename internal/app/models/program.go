package models

// Program belongs to exactly one college.
type Program struct {
	Code        string `json:"program_code"`
	Name        string `json:"program_name"`
	CollegeCode string `json:"college_code"`
}
