package repository

import (
	"context"

	"friendsync-api/core/store"
	"friendsync-api/modules/idea/entity"
)

// IdeaRepositoryInterface defines idea persistence operations
type IdeaRepositoryInterface interface {
	Create(ctx context.Context, idea *entity.Idea) error
	GetByID(ctx context.Context, id string) (*entity.Idea, error)
	Update(ctx context.Context, idea *entity.Idea) (bool, error)
	List(ctx context.Context) ([]entity.Idea, error)
	ListByCategorySlug(ctx context.Context, categorySlug string) ([]entity.Idea, error)
}

// IdeaRepository stores ideas in memory, newest last
type IdeaRepository struct {
	ideas *store.Collection[entity.Idea]
}

// NewIdeaRepository creates a new repository
func NewIdeaRepository() IdeaRepositoryInterface {
	return &IdeaRepository{
		ideas: store.NewCollection[entity.Idea](),
	}
}

// Create stores a new idea
func (r *IdeaRepository) Create(ctx context.Context, idea *entity.Idea) error {
	r.ideas.Put(idea.ID, cloneIdea(*idea))
	return nil
}

// GetByID returns an idea or nil when it does not exist
func (r *IdeaRepository) GetByID(ctx context.Context, id string) (*entity.Idea, error) {
	idea, ok := r.ideas.Get(id)
	if !ok {
		return nil, nil
	}
	idea = cloneIdea(idea)
	return &idea, nil
}

// Update replaces a stored idea, reporting whether it existed
func (r *IdeaRepository) Update(ctx context.Context, idea *entity.Idea) (bool, error) {
	if _, ok := r.ideas.Get(idea.ID); !ok {
		return false, nil
	}
	r.ideas.Put(idea.ID, cloneIdea(*idea))
	return true, nil
}

// List returns all ideas in suggestion order
func (r *IdeaRepository) List(ctx context.Context) ([]entity.Idea, error) {
	ideas := r.ideas.List()
	for i := range ideas {
		ideas[i] = cloneIdea(ideas[i])
	}
	return ideas, nil
}

// ListByCategorySlug returns ideas whose category slug matches
func (r *IdeaRepository) ListByCategorySlug(ctx context.Context, categorySlug string) ([]entity.Idea, error) {
	ideas := r.ideas.Filter(func(i entity.Idea) bool {
		return i.CategorySlug == categorySlug
	})
	for i := range ideas {
		ideas[i] = cloneIdea(ideas[i])
	}
	return ideas, nil
}

// cloneIdea deep-copies the Interested slice so ideas crossing the
// repository boundary never share a backing array with the stored value.
// Without this a caller mutating its copy's slice would write through to
// the store behind the collection's lock.
func cloneIdea(i entity.Idea) entity.Idea {
	interested := make([]string, len(i.Interested))
	copy(interested, i.Interested)
	i.Interested = interested
	return i
}
