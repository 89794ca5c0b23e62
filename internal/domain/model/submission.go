package model

import "time"

// Submission is one stored deployment request. DBPassword holds the sealed
// value; it is never kept in plaintext once the record leaves the service.
type Submission struct {
	Seq         int64
	ID          string
	GitHubLink  string
	DBUser      string
	DBPassword  string
	DBName      string
	Domain      string
	SubmittedAt time.Time
}

// SubmissionInput carries the five plaintext form values of a deployment request.
type SubmissionInput struct {
	GitHubLink string
	DBUser     string
	DBPassword string
	DBName     string
	Domain     string
}
