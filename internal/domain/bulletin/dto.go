package bulletin

import (
	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

// ========================================
// BULLETIN DTOs
// ========================================

type CreatePostRequest struct {
	AuthorID string `json:"-"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Pinned   bool   `json:"pinned"`
}

func (r *CreatePostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePostRequest struct {
	ID       string  `json:"id"`
	AuthorID string  `json:"-"`
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Pinned   *bool   `json:"pinned"`
}

func (r *UpdatePostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
