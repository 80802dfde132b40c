package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naphat/floodkit/internal/model"
)

// Categories returns a copy of the registry in stable order.
func (s *Store) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Category, len(s.categories))
	for i, c := range s.categories {
		out[i] = c
		out[i].SubCategories = append([]string(nil), c.SubCategories...)
	}
	return out
}

// AddCategory creates a new category with a generated id and an empty
// sub-category list.
func (s *Store) AddCategory(ctx context.Context, name string) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return model.Category{}, ErrNotReady
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	cat := model.Category{ID: uuid.NewString(), Name: name, SubCategories: []string{}}
	s.categories = append(s.categories, cat)
	if err := s.adapter.SaveCategories(ctx, s.categories); err != nil {
		s.categories = s.categories[:len(s.categories)-1]
		return model.Category{}, err
	}

	s.log.Info("category added", zap.String("id", cat.ID), zap.String("name", name))
	return cat, nil
}

// RenameCategory updates a category's display name in place. Unknown ids
// are a no-op.
func (s *Store) RenameCategory(ctx context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotReady
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	for i, c := range s.categories {
		if c.ID == id {
			prev := s.categories[i].Name
			s.categories[i].Name = name
			if err := s.adapter.SaveCategories(ctx, s.categories); err != nil {
				s.categories[i].Name = prev
				return err
			}
			return nil
		}
	}
	return nil
}

// AddSubCategory appends a suggestion label to a category, preventing
// duplicates. Returns ErrNotFound for an unknown category.
func (s *Store) AddSubCategory(ctx context.Context, id, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotReady
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return &ValidationError{Field: "label", Reason: "must not be empty"}
	}

	for i, c := range s.categories {
		if c.ID != id {
			continue
		}
		for _, existing := range c.SubCategories {
			if existing == label {
				return nil // already present
			}
		}
		s.categories[i].SubCategories = append(s.categories[i].SubCategories, label)
		if err := s.adapter.SaveCategories(ctx, s.categories); err != nil {
			subs := s.categories[i].SubCategories
			s.categories[i].SubCategories = subs[:len(subs)-1]
			return err
		}
		return nil
	}
	return ErrNotFound
}

// RemoveSubCategory removes a suggestion label from a category. Unknown
// labels are a no-op; unknown categories return ErrNotFound.
func (s *Store) RemoveSubCategory(ctx context.Context, id, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotReady
	}

	for i, c := range s.categories {
		if c.ID != id {
			continue
		}
		for j, existing := range c.SubCategories {
			if existing == label {
				prev := append([]string(nil), c.SubCategories...)
				s.categories[i].SubCategories = append(c.SubCategories[:j], c.SubCategories[j+1:]...)
				if err := s.adapter.SaveCategories(ctx, s.categories); err != nil {
					s.categories[i].SubCategories = prev
					return err
				}
				return nil
			}
		}
		return nil
	}
	return ErrNotFound
}

// RemoveCategory deletes a category. Seed categories are protected.
// Items referencing the deleted category keep their categoryId; they
// render with the raw id from then on.
func (s *Store) RemoveCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotReady
	}
	if s.protected[id] {
		return ErrProtectedCategory
	}

	for i, c := range s.categories {
		if c.ID != id {
			continue
		}
		removed := c
		s.categories = append(s.categories[:i], s.categories[i+1:]...)
		if err := s.adapter.SaveCategories(ctx, s.categories); err != nil {
			s.categories = append(s.categories[:i], append([]model.Category{removed}, s.categories[i:]...)...)
			return err
		}
		s.log.Info("category removed", zap.String("id", id), zap.String("name", removed.Name))
		return nil
	}
	return nil
}

// CategoryName resolves a category id to its display name, falling back
// to the raw id when the category no longer exists.
func (s *Store) CategoryName(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
