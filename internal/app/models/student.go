package models

// Student is enrolled in exactly one program. MiddleName and
// ProfileImagePath are optional; the image path is written by an external
// upload mechanism and only stored here.
type Student struct {
	IDNumber         string  `json:"id_number"`
	FirstName        string  `json:"first_name"`
	MiddleName       *string `json:"middle_name,omitempty"`
	LastName         string  `json:"last_name"`
	Gender           string  `json:"gender"`
	YearLevel        int     `json:"year_level"`
	ProgramCode      string  `json:"program_code"`
	ProfileImagePath *string `json:"profile_image_path,omitempty"`
}
