package models

// College is the top level of the academic hierarchy. The code is the
// primary key and is referenced by programs.
type College struct {
	Code string `json:"college_code"`
	Name string `json:"college_name"`
}
