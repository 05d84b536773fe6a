// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, services and storage can all import types without depending
// on each other.
//
// Three shapes exist for a student:
//
//   - Student:      the persisted row (db:"..." tags, used by storage)
//   - StudentInput: what a client sends on create/update (json + validate tags)
//   - StudentDTO:   what a client receives (json tags only)
package types

import "time"

// Student is a row of the students table.
//
// ID is assigned by the store on insert and never changes afterwards.
// RegistrationDate is written once; LastModifiedDate is refreshed by
// every successful mutation.
type Student struct {
	ID               int64     `db:"student_id"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	Email            string    `db:"email"`
	Course           string    `db:"course"`
	Age              int       `db:"age"`
	RegistrationDate time.Time `db:"registration_date"`
	LastModifiedDate time.Time `db:"last_modified_date"`
}

// FullName joins first and last name with a single space.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// DTO maps the persisted row to its API-facing representation.
func (s Student) DTO() StudentDTO {
	return StudentDTO{
		StudentID:        s.ID,
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		FullName:         s.FullName(),
		Email:            s.Email,
		Course:           s.Course,
		Age:              s.Age,
		RegistrationDate: s.RegistrationDate,
		LastModifiedDate: s.LastModifiedDate,
	}
}

// StudentDTOs maps a slice of rows, always returning a non-nil slice so the
// JSON encoding is [] rather than null.
func StudentDTOs(students []Student) []StudentDTO {
	out := make([]StudentDTO, 0, len(students))
	for _, s := range students {
		out = append(out, s.DTO())
	}
	return out
}

// StudentInput is the request body for POST and PUT /api/students.
//
// Age is a pointer so that a missing "age" key can be told apart from 0
// and reported as "Age is required".
//
// validate:"..." tags are read by the student service's validator; the
// field order here is the order in which field errors are reported.
type StudentInput struct {
	FirstName string `json:"firstName" validate:"notblank,min=2,max=50"`
	LastName  string `json:"lastName"  validate:"notblank,min=2,max=50"`
	Email     string `json:"email"     validate:"notblank,max=255,email"`
	Course    string `json:"course"    validate:"notblank,min=2,max=100"`
	Age       *int   `json:"age"       validate:"required,min=16,max=100"`
}

// StudentDTO is the transfer representation returned by every student
// endpoint. Timestamps encode as RFC 3339 (ISO-8601).
type StudentDTO struct {
	StudentID        int64     `json:"studentId"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Course           string    `json:"course"`
	Age              int       `json:"age"`
	RegistrationDate time.Time `json:"registrationDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}

// Admin is a row of the admins table. Password holds whatever the
// configured password encoder produced; it is never serialised.
type Admin struct {
	Email     string    `db:"email"      json:"email"`
	Password  string    `db:"password"   json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// AdminCredentials is the request body for login and admin creation.
type AdminCredentials struct {
	Email    string `json:"email"    validate:"notblank,max=255,email"`
	Password string `json:"password" validate:"notblank"`
}

// Session is a server-side login record. The session token handed to the
// client only references it by ID, so deleting the row revokes the token.
type Session struct {
	ID        string    `db:"session_id" json:"id"`
	Email     string    `db:"email"      json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
