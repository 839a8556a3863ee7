package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCategoriesQueryHandler returns every category ordered by title.
type ListCategoriesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Caller(), services.OpBrowseCatalog); err != nil {
		return nil, err
	}

	var rows []struct {
		ID    uuid.UUID
		Slug  string
		Title string
	}
	err := h.db.WithContext(ctx).
		Raw(`SELECT id, slug, title FROM categories ORDER BY title, slug`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryView, 0, len(rows))
	for _, r := range rows {
		id, err := toUUID(r.ID)
		if err != nil {
			return nil, err
		}
		categories = append(categories, CategoryView{ID: id, Slug: r.Slug, Title: r.Title})
	}
	return categories, nil
}
