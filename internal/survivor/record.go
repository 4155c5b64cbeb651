// Package survivor defines the survivor record served by the community API and
// the pure functions that turn a record into display cells.
package survivor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Record is one survivor entry as returned by the API.
// Records are values; nothing in this module mutates a loaded Record.
type Record struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	Email               string  `json:"email"                 validate:"required"`
	PhoneNumber         string  `json:"phone_number"`
	Location            string  `json:"location"`
	Profession          string  `json:"profession"`
	Age                 string  `json:"age"`
	CommunityReason     string  `json:"gleemora_community"`
	StoryOfResilience   string  `json:"story_of_resilience"`
	InvolvedInAdvocacy  *string `json:"involve_in_asc"`
	ReferralCode        string  `json:"referral_code"`
	SocialMediaProfiles string  `json:"social_media_profiles"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

// Key returns the row key of the record (its email).
func (r Record) Key() string {
	return r.Email
}

// Advocacy returns the advocacy answer, or "" when the API sent null.
func (r Record) Advocacy() string {
	if r.InvolvedInAdvocacy == nil {
		return ""
	}
	return *r.InvolvedInAdvocacy
}

// Envelope is the response body of the survivor endpoint.
// Top-level fields other than data are ignored.
type Envelope struct {
	Data []Record `json:"data" validate:"required,unique=Email,dive"`
}

// ErrInvalidEnvelope is returned when a decoded response does not have the expected shape.
var ErrInvalidEnvelope = errors.New("invalid survivor response")

//nolint:gochecknoglobals // validator caches struct metadata; one instance per process.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that data is present, that every record has an email and that
// emails are unique, since the email is the row key.
func (e *Envelope) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidEnvelope, strings.Join(msgs, "; "))
}

// describeFieldError turns a validator error into a short message keyed by namespace.
func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Namespace())
	case "unique":
		return fmt.Sprintf("field '%s' must have unique %s values", fe.Namespace(), fe.Param())
	default:
		return fmt.Sprintf("field '%s' is invalid: %s", fe.Namespace(), fe.Tag())
	}
}
