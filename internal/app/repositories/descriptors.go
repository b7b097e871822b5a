package repositories

import (
	"github.com/jackc/pgx/v5"

	"github.com/jmcabral/registra/internal/app/models/dto"
	"github.com/jmcabral/registra/internal/app/query"
)

// Entity descriptors for the shared query core. The Columns slices are the
// allow-lists: only these field names are accepted as filters or order-by,
// and only these expressions ever appear in generated SQL.

func collegeDescriptor() query.Descriptor[dto.CollegeRow] {
	return query.Descriptor[dto.CollegeRow]{
		Select: "c.college_code, c.college_name",
		From:   "FROM colleges c",
		Columns: []query.Column{
			{Name: "college_code", Expr: "c.college_code"},
			{Name: "college_name", Expr: "c.college_name"},
		},
		DefaultOrder: "college_code",
		SearchExprs:  []string{"c.college_code", "c.college_name"},
		Scan:         pgx.RowToStructByName[dto.CollegeRow],
	}
}

func programDescriptor() query.Descriptor[dto.ProgramRow] {
	return query.Descriptor[dto.ProgramRow]{
		Select: "p.program_code, p.program_name, p.college_code, c.college_name",
		From:   "FROM programs p JOIN colleges c ON p.college_code = c.college_code",
		Columns: []query.Column{
			{Name: "program_code", Expr: "p.program_code"},
			{Name: "program_name", Expr: "p.program_name"},
			{Name: "college_code", Expr: "p.college_code"},
			{Name: "college_name", Expr: "c.college_name"},
		},
		DefaultOrder: "program_code",
		SearchExprs:  []string{"p.program_code", "p.program_name", "c.college_name"},
		Scan:         pgx.RowToStructByName[dto.ProgramRow],
	}
}

func studentDescriptor() query.Descriptor[dto.StudentRow] {
	return query.Descriptor[dto.StudentRow]{
		Select: "s.id_number, s.first_name, s.middle_name, s.last_name, s.gender, s.year_level, p.program_name, c.college_name, s.program_code",
		From:   "FROM students s JOIN programs p ON s.program_code = p.program_code JOIN colleges c ON p.college_code = c.college_code",
		Columns: []query.Column{
			{Name: "id_number", Expr: "s.id_number"},
			{Name: "first_name", Expr: "s.first_name"},
			{Name: "middle_name", Expr: "s.middle_name"},
			{Name: "last_name", Expr: "s.last_name"},
			{Name: "gender", Expr: "s.gender"},
			{Name: "year_level", Expr: "s.year_level"},
			{Name: "program_name", Expr: "p.program_name"},
			{Name: "college_name", Expr: "c.college_name"},
			{Name: "program_code", Expr: "s.program_code"},
		},
		DefaultOrder: "id_number",
		SearchExprs: []string{
			"s.id_number", "s.first_name", "s.middle_name", "s.last_name",
			"s.year_level::text", "p.program_name", "c.college_name",
		},
		BoostExpr: "s.year_level::text",
		Scan:      pgx.RowToStructByName[dto.StudentRow],
	}
}
