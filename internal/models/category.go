package models

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// Category is a reference entity that transactions are recorded against.
//
// Categories are managed by administrators. They are never hard-deleted while
// transactions reference them; instead they are deactivated, which removes
// them from selection lists but keeps historical transactions readable.
type Category struct {
	DefaultModel
	Name   string `gorm:"uniqueIndex"`
	Code   string `gorm:"uniqueIndex"` // URL-safe code, derived from the name on creation
	Active bool
}

var codeInvalidChars = regexp.MustCompile("[^a-z0-9]+")

// CategoryCode derives the URL-safe code for a category name.
//
// Diacritics are folded to their base characters so that e.g. "Café" becomes
// "cafe", everything that is not a lowercase letter or digit collapses into a
// single "-".
func CategoryCode(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		// Fall back to the raw name, the regexp below still guarantees
		// a URL-safe result
		folded = name
	}

	code := strings.ToLower(folded)
	code = codeInvalidChars.ReplaceAllString(code, "-")
	return strings.Trim(code, "-")
}

// BeforeSave trims whitespace from the name.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// BeforeCreate derives the code from the name when it is not set explicitly.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	err := c.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	if c.Code == "" {
		c.Code = CategoryCode(c.Name)
	}

	return nil
}
