package repositories

import (
	"reflect"
	"testing"

	"github.com/jmcabral/registra/internal/app/models/dto"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestPartialUpdateSingleField(t *testing.T) {
	var upd partialUpdate
	req := dto.UpdateStudentRequest{NewLastName: strptr("Smith")}

	SetPresent(&upd, "first_name", req.NewFirstName)
	SetPresent(&upd, "middle_name", req.NewMiddleName)
	SetPresent(&upd, "last_name", req.NewLastName)
	SetPresent(&upd, "gender", req.NewGender)
	SetPresent(&upd, "year_level", req.NewYearLevel)
	SetPresent(&upd, "program_code", req.NewProgramCode)

	sql, args := upd.SQL("students", "id_number", "2023001")
	want := "UPDATE students SET last_name = $1 WHERE id_number = $2"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"Smith", "2023001"}) {
		t.Errorf("args = %v, want [Smith 2023001]", args)
	}
}

func TestPartialUpdateExplicitEmptyValue(t *testing.T) {
	// An explicitly empty middle name is a supplied field, not an omission.
	var upd partialUpdate
	SetPresent(&upd, "middle_name", strptr(""))

	if upd.Empty() {
		t.Fatal("explicitly empty value must count as supplied")
	}
	sql, args := upd.SQL("students", "id_number", "2023001")
	if sql != "UPDATE students SET middle_name = $1 WHERE id_number = $2" {
		t.Errorf("unexpected sql %q", sql)
	}
	if args[0] != "" {
		t.Errorf("args[0] = %v, want empty string", args[0])
	}
}

func TestPartialUpdateNothingSupplied(t *testing.T) {
	var upd partialUpdate
	SetPresent[string](&upd, "first_name", nil)
	SetPresent[int](&upd, "year_level", nil)

	if !upd.Empty() {
		t.Fatal("absent fields must not produce assignments")
	}
}

func TestPartialUpdateMultipleFields(t *testing.T) {
	var upd partialUpdate
	SetPresent(&upd, "year_level", intptr(2))
	SetPresent(&upd, "program_code", strptr("BSIT"))

	sql, args := upd.SQL("students", "id_number", "2023001")
	want := "UPDATE students SET year_level = $1, program_code = $2 WHERE id_number = $3"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{2, "BSIT", "2023001"}) {
		t.Errorf("args = %v", args)
	}
}
