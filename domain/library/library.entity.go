package library

import (
	"folioBackend/domain/user"

	"gorm.io/gorm"
)

// Library is a user-owned named collection of literature items. The
// many-to-many relation to literature lives in the library_literatures join
// table, declared on the literature side; membership changes only go through
// explicit add/remove operations, never through list replacement.
type Library struct {
	gorm.Model
	UUID        string `gorm:"index"`
	Name        string
	Description string
	Creator     user.User
	CreatorID   uint
}

type LibraryIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type LibraryOut struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatorId   string `json:"creatorId"`
}

type LibraryListOut struct {
	LibraryOut
	LiteratureCount int64    `json:"literature_count"`
	PreviewTitles   []string `json:"preview_titles"`
}

// LibraryItemOut is the resolved projection of a member literature item,
// scanned straight from the join so this package stays independent of the
// literature package.
type LibraryItemOut struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Authors        string `json:"authors"`
	Description    string `json:"description"`
	LiteratureType int    `json:"literature_type"`
}

type LibraryDetailOut struct {
	LibraryOut
	Literature []LibraryItemOut `json:"literature"`
}
