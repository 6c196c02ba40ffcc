package student

import "time"

type Student struct {
	ID                 string    `json:"id"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	Course             string    `json:"course"` // free text, not a course code reference
	Year               int       `json:"year"`
	RegistrationNumber string    `json:"registrationNumber"`
	CreatedAt          time.Time `json:"createdAt"`
}

// UpsertStudentRequest is the full payload for both create and replace.
type UpsertStudentRequest struct {
	FirstName          string `json:"firstName" binding:"required"`
	LastName           string `json:"lastName" binding:"required"`
	Email              string `json:"email" binding:"required"`
	Course             string `json:"course" binding:"required"`
	Year               int    `json:"year" binding:"required"`
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
}
