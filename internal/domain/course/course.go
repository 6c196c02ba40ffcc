package course

import "time"

type Course struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Instructor string    `json:"instructor"`
	Credits    int       `json:"credits"`
	Semester   string    `json:"semester"`
	Department string    `json:"department"`
	Year       int       `json:"year"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UpsertCourseRequest is the full payload for both create and replace.
type UpsertCourseRequest struct {
	Name       string `json:"name" binding:"required"`
	Code       string `json:"code" binding:"required"`
	Instructor string `json:"instructor" binding:"required"`
	Credits    int    `json:"credits" binding:"required"`
	Semester   string `json:"semester" binding:"required"`
	Department string `json:"department" binding:"required"`
	Year       int    `json:"year" binding:"required"`
}
