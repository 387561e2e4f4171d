package model

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	maxNameLength      = 100
	maxBiographyLength = 2000
)

// nameRe allows letters (including Latin-1 accents), spaces, hyphens and
// apostrophes.
var nameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s'-]+$`)

var earliestBirthDate = time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)

type CreateAuthorRequest struct {
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	DateOfDeath *time.Time `json:"dateOfDeath,omitempty"`
	Biography   *string    `json:"biography,omitempty"`
}

// Validate checks every structural rule and collects all violations into a
// single validation.Errors value.
func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required,
			validation.Length(1, maxNameLength),
			validation.Match(nameRe).Error("must contain only letters, spaces, hyphens and apostrophes"),
		),
		validation.Field(&r.LastName,
			validation.Required,
			validation.Length(1, maxNameLength),
			validation.Match(nameRe).Error("must contain only letters, spaces, hyphens and apostrophes"),
		),
		validation.Field(&r.DateOfBirth,
			validation.Min(earliestBirthDate).Error("must be after 1800"),
			validation.Max(time.Now()).Error("must be in the past"),
		),
		validation.Field(&r.DateOfDeath,
			validation.Max(time.Now()).Error("must not be in the future"),
			validation.By(deathAfterBirth(r.DateOfBirth)),
		),
		validation.Field(&r.Biography,
			validation.Length(0, maxBiographyLength),
		),
	)
}

// ToEntity adapts the request to a new Author; identity and timestamps are
// assigned by the store.
func (r CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		DateOfDeath: r.DateOfDeath,
		Biography:   r.Biography,
	}
}

// UpdateAuthorRequest replaces all mutable fields; the identity in the body
// must match the path.
type UpdateAuthorRequest struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	DateOfDeath *time.Time `json:"dateOfDeath,omitempty"`
	Biography   *string    `json:"biography,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, requiredID),
		validation.Field(&r.FirstName,
			validation.Required,
			validation.Length(1, maxNameLength),
			validation.Match(nameRe).Error("must contain only letters, spaces, hyphens and apostrophes"),
		),
		validation.Field(&r.LastName,
			validation.Required,
			validation.Length(1, maxNameLength),
			validation.Match(nameRe).Error("must contain only letters, spaces, hyphens and apostrophes"),
		),
		validation.Field(&r.DateOfBirth,
			validation.Min(earliestBirthDate).Error("must be after 1800"),
			validation.Max(time.Now()).Error("must be in the past"),
		),
		validation.Field(&r.DateOfDeath,
			validation.Max(time.Now()).Error("must not be in the future"),
			validation.By(deathAfterBirth(r.DateOfBirth)),
		),
		validation.Field(&r.Biography,
			validation.Length(0, maxBiographyLength),
		),
	)
}

// Apply replaces the author's mutable fields with the request's values.
func (r UpdateAuthorRequest) Apply(a *Author) {
	a.FirstName = r.FirstName
	a.LastName = r.LastName
	a.DateOfBirth = r.DateOfBirth
	a.DateOfDeath = r.DateOfDeath
	a.Biography = r.Biography
}

// deathAfterBirth is the cross-field rule: when both dates are present the
// death date must come after the birth date.
func deathAfterBirth(birth *time.Time) validation.RuleFunc {
	return func(value any) error {
		death, ok := value.(*time.Time)
		if !ok || death == nil || birth == nil {
			return nil
		}
		if !death.After(*birth) {
			return errors.New("must be after the date of birth")
		}
		return nil
	}
}

// AuthorViewModel is the read representation exposed over HTTP. Books is
// present only when the read eager-loaded the relation.
type AuthorViewModel struct {
	ID          uuid.UUID       `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	DateOfBirth *time.Time      `json:"dateOfBirth,omitempty"`
	DateOfDeath *time.Time      `json:"dateOfDeath,omitempty"`
	Biography   *string         `json:"biography,omitempty"`
	Books       []BookViewModel `json:"books,omitempty"`

	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

func (a Author) ToViewModel() AuthorViewModel {
	vm := AuthorViewModel{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		DateOfBirth:  a.DateOfBirth,
		DateOfDeath:  a.DateOfDeath,
		Biography:    a.Biography,
		CreatedAt:    a.CreatedAt,
		LastModified: a.LastModified,
	}

	for _, b := range a.Books {
		vm.Books = append(vm.Books, b.ToViewModel())
	}

	return vm
}
