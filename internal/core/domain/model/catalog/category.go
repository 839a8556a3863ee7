package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

const (
	maxSlugLength  = 50
	maxTitleLength = 255
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var (
	// ErrCategoryIsNotConstructed is returned when a Category was not created via NewCategory.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
	// ErrTitleIsRequired is returned for a blank category or menu item title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrSlugIsRequired is returned for a blank category slug.
	ErrSlugIsRequired = errs.NewValueIsRequiredError("slug")
)

// Category groups menu items. Its slug is the stable, URL-safe handle and is
// unique across the catalog.
type Category struct {
	id    kernel.UUID
	slug  string
	title string
	guard guard.ConstructorGuard
}

// NewCategory validates and builds a category. The slug must be 1 to 50
// characters of lowercase letters, digits and hyphens.
func NewCategory(id kernel.UUID, slug, title string) (*Category, error) {
	c := &Category{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setSlug(slug),
		c.setTitle(title),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c *Category) ID() kernel.UUID {
	return c.id
}

func (c *Category) Slug() string {
	return c.slug
}

func (c *Category) Title() string {
	return c.title
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setSlug(slug string) error {
	if slug == "" {
		return ErrSlugIsRequired
	}
	if len(slug) > maxSlugLength {
		return errs.NewValueIsOutOfRangeError("slug length", len(slug), 1, maxSlugLength)
	}
	if !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidErrorWithCause("slug", fmt.Errorf("%q must match %s", slug, slugPattern))
	}
	c.slug = slug
	return nil
}

func (c *Category) setTitle(title string) error {
	t, err := normalizeTitle(title)
	if err != nil {
		return err
	}
	c.title = t
	return nil
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleIsRequired
	}
	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		return "", errs.NewValueIsOutOfRangeError("title length", n, 1, maxTitleLength)
	}
	return title, nil
}
