package services

import (
	"errors"
	"fmt"
)

// ErrPostNotValid signals a posting payload with a blank required text field.
var ErrPostNotValid = errors.New("positionName or jobDescription is missing, please check your input")

// PostNotFoundError signals that no posting exists for the requested id.
type PostNotFoundError struct {
	ID uint
}

func (e *PostNotFoundError) Error() string {
	return fmt.Sprintf("post with id = %d does not exist", e.ID)
}

// ApplicationConflictError signals that the user has already applied to the posting.
type ApplicationConflictError struct {
	PostID uint
	UserID uint
}

func (e *ApplicationConflictError) Error() string {
	return fmt.Sprintf("user %d has already applied to post %d", e.UserID, e.PostID)
}

// SkillUnknownError signals a skill name missing from the catalog.
// Creation and update fail rather than silently inventing new skills.
type SkillUnknownError struct {
	Name string
}

func (e *SkillUnknownError) Error() string {
	return fmt.Sprintf("skill %q is not registered in the skill catalog", e.Name)
}
