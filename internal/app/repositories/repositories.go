package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles all repository instances sharing one pool.
type Repositories struct {
	College *CollegeRepository
	Program *ProgramRepository
	Student *StudentRepository
	User    *UserRepository
	Session *SessionRepository
}

// NewRepositories creates every repository on the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		College: NewCollegeRepository(db),
		Program: NewProgramRepository(db),
		Student: NewStudentRepository(db),
		User:    NewUserRepository(db),
		Session: NewSessionRepository(db),
	}
}
