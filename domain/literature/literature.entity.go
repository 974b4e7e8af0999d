package literature

import (
	"time"

	"folioBackend/domain/library"
	"folioBackend/domain/user"
	"folioBackend/types"

	"gorm.io/gorm"
)

// Literature type codes. Stored and compared as integers.
const (
	TypeBook            = 1
	TypeArticle         = 2
	TypeJournal         = 3
	TypeConferencePaper = 4
	TypeThesis          = 5
)

var typeNames = map[int]string{
	TypeBook:            "Book",
	TypeArticle:         "Article",
	TypeJournal:         "Journal",
	TypeConferencePaper: "Conference Paper",
	TypeThesis:          "Thesis",
}

func TypeName(code int) string {
	if name, ok := typeNames[code]; ok {
		return name
	}

	return "Unknown"
}

// Literature is a bibliographic record. Readable by anyone, mutable only by
// its creator. The Libraries association owns the library_literatures join
// table shared with the library package.
type Literature struct {
	gorm.Model
	UUID           string `gorm:"index"`
	Title          string
	Authors        string
	Description    string
	Url            string
	LiteratureType int
	Creator        user.User
	CreatorID      uint
	Libraries      []*library.Library `gorm:"many2many:library_literatures;"`
}

type LiteratureIn struct {
	Title          string        `json:"title" binding:"required"`
	Authors        string        `json:"authors" binding:"required"`
	Description    string        `json:"description"`
	Url            string        `json:"url"`
	LiteratureType types.FlexInt `json:"literature_type" binding:"required"`
}

type LiteratureOut struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Authors            string    `json:"authors"`
	Description        string    `json:"description"`
	Url                string    `json:"url"`
	LiteratureType     int       `json:"literature_type"`
	LiteratureTypeName string    `json:"literature_type_name"`
	CreatorId          string    `json:"creatorId"`
	CreatorName        string    `json:"creatorName"`
	CreatedAt          time.Time `json:"createdAt"`
}

// LiteratureDetailOut carries the record plus the two membership partitions
// of the requesting user's libraries. Guests get empty partitions.
type LiteratureDetailOut struct {
	Literature              LiteratureOut        `json:"literature"`
	LibrariesNotAssociated  []library.LibraryOut `json:"libraries_not_associated"`
	UserAssociatedLibraries []library.LibraryOut `json:"user_associated_libraries"`
}
