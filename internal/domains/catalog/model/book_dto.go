package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	maxTitleLength       = 200
	maxSubtitleLength    = 300
	maxDescriptionLength = 5000
	maxPublisherLength   = 200
	maxPageCount         = 50000
)

// earliestPublishedDate predates movable-type printing; nothing in the
// catalog can have been published before it.
var earliestPublishedDate = time.Date(1450, 1, 1, 0, 0, 0, 0, time.UTC)

type CreateBookRequest struct {
	Title         string     `json:"title"`
	Subtitle      *string    `json:"subtitle,omitempty"`
	Description   *string    `json:"description,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	ISBN          *string    `json:"isbn,omitempty"`
	PageCount     *int       `json:"pageCount,omitempty"`
	Publisher     *string    `json:"publisher,omitempty"`
	AuthorID      uuid.UUID  `json:"authorId"`
	GenreID       uuid.UUID  `json:"genreId"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required,
			validation.Length(1, maxTitleLength),
		),
		validation.Field(&r.Subtitle,
			validation.Length(1, maxSubtitleLength),
		),
		validation.Field(&r.Description,
			validation.Length(1, maxDescriptionLength),
		),
		validation.Field(&r.PublishedDate,
			validation.Min(earliestPublishedDate).Error("must be after 1450"),
			validation.Max(time.Now()).Error("must not be in the future"),
		),
		validation.Field(&r.ISBN,
			validation.By(validISBN),
		),
		validation.Field(&r.PageCount,
			validation.By(pageCountRange),
		),
		validation.Field(&r.Publisher,
			validation.Length(1, maxPublisherLength),
		),
		validation.Field(&r.AuthorID, requiredID),
		validation.Field(&r.GenreID, requiredID),
	)
}

func (r CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:         r.Title,
		Subtitle:      r.Subtitle,
		Description:   r.Description,
		PublishedDate: r.PublishedDate,
		ISBN:          r.ISBN,
		PageCount:     r.PageCount,
		Publisher:     r.Publisher,
		AuthorID:      r.AuthorID,
		GenreID:       r.GenreID,
	}
}

type UpdateBookRequest struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Subtitle      *string    `json:"subtitle,omitempty"`
	Description   *string    `json:"description,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	ISBN          *string    `json:"isbn,omitempty"`
	PageCount     *int       `json:"pageCount,omitempty"`
	Publisher     *string    `json:"publisher,omitempty"`
	AuthorID      uuid.UUID  `json:"authorId"`
	GenreID       uuid.UUID  `json:"genreId"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, requiredID),
		validation.Field(&r.Title,
			validation.Required,
			validation.Length(1, maxTitleLength),
		),
		validation.Field(&r.Subtitle,
			validation.Length(1, maxSubtitleLength),
		),
		validation.Field(&r.Description,
			validation.Length(1, maxDescriptionLength),
		),
		validation.Field(&r.PublishedDate,
			validation.Min(earliestPublishedDate).Error("must be after 1450"),
			validation.Max(time.Now()).Error("must not be in the future"),
		),
		validation.Field(&r.ISBN,
			validation.By(validISBN),
		),
		validation.Field(&r.PageCount,
			validation.By(pageCountRange),
		),
		validation.Field(&r.Publisher,
			validation.Length(1, maxPublisherLength),
		),
		validation.Field(&r.AuthorID, requiredID),
		validation.Field(&r.GenreID, requiredID),
	)
}

// Apply replaces the book's mutable fields with the request's values.
func (r UpdateBookRequest) Apply(b *Book) {
	b.Title = r.Title
	b.Subtitle = r.Subtitle
	b.Description = r.Description
	b.PublishedDate = r.PublishedDate
	b.ISBN = r.ISBN
	b.PageCount = r.PageCount
	b.Publisher = r.Publisher
	b.AuthorID = r.AuthorID
	b.GenreID = r.GenreID
}

// validISBN accepts ISBN-10 and ISBN-13, with or without hyphens. The final
// ISBN-10 character may be the X check digit.
func validISBN(value any) error {
	isbn, ok := value.(*string)
	if !ok || isbn == nil {
		return nil
	}

	var digits int
	var hasCheckX bool
	for i, c := range *isbn {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '-' || c == ' ':
		case (c == 'X' || c == 'x') && i == len(*isbn)-1:
			hasCheckX = true
		default:
			return errors.New("must be a valid ISBN-10 or ISBN-13")
		}
	}

	if hasCheckX {
		digits++
	}
	if digits != 10 && digits != 13 {
		return errors.New("must be a valid ISBN-10 or ISBN-13")
	}
	return nil
}

// BookViewModel is the flattened read representation: AuthorName and
// GenreName are computed from the loaded relations when present and left
// empty otherwise. Rendering never triggers an extra fetch.
type BookViewModel struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Subtitle      *string    `json:"subtitle,omitempty"`
	Description   *string    `json:"description,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	ISBN          *string    `json:"isbn,omitempty"`
	PageCount     *int       `json:"pageCount,omitempty"`
	Publisher     *string    `json:"publisher,omitempty"`

	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	GenreID    uuid.UUID `json:"genreId"`
	GenreName  string    `json:"genreName"`

	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

func (b Book) ToViewModel() BookViewModel {
	vm := BookViewModel{
		ID:            b.ID,
		Title:         b.Title,
		Subtitle:      b.Subtitle,
		Description:   b.Description,
		PublishedDate: b.PublishedDate,
		ISBN:          b.ISBN,
		PageCount:     b.PageCount,
		Publisher:     b.Publisher,
		AuthorID:      b.AuthorID,
		GenreID:       b.GenreID,
		CreatedAt:     b.CreatedAt,
		LastModified:  b.LastModified,
	}

	if b.Author != nil {
		vm.AuthorName = b.Author.FullName()
	}
	if b.Genre != nil {
		vm.GenreName = b.Genre.Name
	}

	return vm
}
