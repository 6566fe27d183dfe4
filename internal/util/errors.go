package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrCourseNotFound      = errors.New("course not found")
	ErrAlreadyEnrolled     = errors.New("already enrolled in this course")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrCourseNotCompleted  = errors.New("course must be completed to generate certificate")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrNotEnrolled         = errors.New("you must be enrolled to review this course")
	ErrAlreadyReviewed     = errors.New("you have already reviewed this course")
	ErrReviewNotFound      = errors.New("review not found")
	ErrNotReviewAuthor     = errors.New("not authorized to delete this review")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrWrongPassword       = errors.New("current password is incorrect")
	ErrPasswordTooShort    = errors.New("new password must be at least 6 characters")
)
