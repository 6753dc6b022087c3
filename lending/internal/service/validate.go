package service

import (
	"unicode/utf8"

	"github.com/Astemirdum/lending-registry/lending/internal/errs"
)

// MaxTextLength bounds titles and authors, in characters.
const MaxTextLength = 64

func validText(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	return utf8.RuneCountInString(s) <= MaxTextLength
}

func validateTitle(title string) error {
	if !validText(title) {
		return errs.ErrInvalidTitle
	}
	return nil
}

func validateAuthor(author string) error {
	if !validText(author) {
		return errs.ErrInvalidAuthor
	}
	return nil
}

// Listing prices only need to be positive; donated books are the one
// zero-priced kind and never pass through here.
func validatePrice(price uint64) error {
	if price == 0 {
		return errs.ErrInvalidParams
	}
	return nil
}

func validateBookID(id, totalBooks uint64) error {
	if id >= totalBooks {
		return errs.ErrInvalidBookId
	}
	return nil
}
