package repository

import (
	"context"

	"friendsync-api/core/store"
	"friendsync-api/modules/event/entity"
)

// EventRepositoryInterface defines the repository contract. The collection
// is flat and append-friendly; grouping by date is a derived query.
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.EventInstance) error
	GetByID(ctx context.Context, id string) (*entity.EventInstance, error)
	Update(ctx context.Context, event *entity.EventInstance) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entity.EventInstance, error)
	ListByDate(ctx context.Context, date string) ([]entity.EventInstance, error)
}

// EventRepository holds the event collection for one session
type EventRepository struct {
	events *store.Collection[entity.EventInstance]
}

// NewEventRepository creates a new repository instance with an empty collection
func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: store.NewCollection[entity.EventInstance](),
	}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.EventInstance) error {
	r.events.Put(event.ID, *event)
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.EventInstance, error) {
	event, ok := r.events.Get(id)
	if !ok {
		return nil, nil
	}
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.EventInstance) (bool, error) {
	if _, ok := r.events.Get(event.ID); !ok {
		return false, nil
	}
	r.events.Put(event.ID, *event)
	return true, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.events.Delete(id), nil
}

func (r *EventRepository) List(ctx context.Context) ([]entity.EventInstance, error) {
	return r.events.List(), nil
}

func (r *EventRepository) ListByDate(ctx context.Context, date string) ([]entity.EventInstance, error) {
	return r.events.Filter(func(e entity.EventInstance) bool {
		return e.Date == date
	}), nil
}
