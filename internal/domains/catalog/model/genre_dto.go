package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	maxGenreNameLength        = 100
	maxGenreDescriptionLength = 1000
)

type CreateGenreRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, maxGenreNameLength),
		),
		validation.Field(&r.Description,
			validation.Length(0, maxGenreDescriptionLength),
		),
	)
}

func (r CreateGenreRequest) ToEntity() *Genre {
	return &Genre{
		Name:        r.Name,
		Description: r.Description,
	}
}

type UpdateGenreRequest struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

func (r UpdateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, requiredID),
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, maxGenreNameLength),
		),
		validation.Field(&r.Description,
			validation.Length(0, maxGenreDescriptionLength),
		),
	)
}

func (r UpdateGenreRequest) Apply(g *Genre) {
	g.Name = r.Name
	g.Description = r.Description
}

type GenreViewModel struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Books       []BookViewModel `json:"books,omitempty"`

	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

func (g Genre) ToViewModel() GenreViewModel {
	vm := GenreViewModel{
		ID:           g.ID,
		Name:         g.Name,
		Description:  g.Description,
		CreatedAt:    g.CreatedAt,
		LastModified: g.LastModified,
	}

	for _, b := range g.Books {
		vm.Books = append(vm.Books, b.ToViewModel())
	}

	return vm
}
