// Package viewmodel derives the list each page actually renders from the raw
// collections: join related records, apply the viewer-selected criteria,
// order the result. Input slices are never mutated and identical inputs
// always yield the same ordered output; only the relative-time display
// labels read the clock.
package viewmodel

import "hakwon/backend/models"

// UnknownName is the placeholder shown when a joined record is missing,
// instead of letting a nil leak into rendering.
const UnknownName = "알 수 없음"

// LessonByID resolves a lesson lookup against an already fetched collection.
func LessonByID(lessons []models.Lesson, id int) *models.Lesson {
	for i := range lessons {
		if lessons[i].ID == id {
			return &lessons[i]
		}
	}
	return nil
}

// UserByID resolves a user lookup against an already fetched collection.
func UserByID(users []models.User, id int) *models.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

// AuthorName joins an author lookup to a display name.
func AuthorName(users []models.User, id models.LookupID) string {
	if u := UserByID(users, id.Int()); u != nil {
		return u.Name
	}
	return UnknownName
}
