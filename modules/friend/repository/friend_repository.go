package repository

import (
	"context"

	"friendsync-api/core/store"
	"friendsync-api/modules/friend/entity"
)

// FriendRepositoryInterface defines the repository contract
type FriendRepositoryInterface interface {
	Create(ctx context.Context, friend *entity.Friend) error
	GetByID(ctx context.Context, id string) (*entity.Friend, error)
	List(ctx context.Context) ([]entity.Friend, error)
	Update(ctx context.Context, friend *entity.Friend) (bool, error)
	MapByID(ctx context.Context) (map[string]entity.Friend, error)
}

// FriendRepository holds the friend registry for one session
type FriendRepository struct {
	friends *store.Collection[entity.Friend]
}

// NewFriendRepository creates a new repository instance with an empty registry
func NewFriendRepository() *FriendRepository {
	return &FriendRepository{
		friends: store.NewCollection[entity.Friend](),
	}
}

func (r *FriendRepository) Create(ctx context.Context, friend *entity.Friend) error {
	r.friends.Put(friend.ID, *friend)
	return nil
}

func (r *FriendRepository) GetByID(ctx context.Context, id string) (*entity.Friend, error) {
	friend, ok := r.friends.Get(id)
	if !ok {
		return nil, nil
	}
	return &friend, nil
}

func (r *FriendRepository) List(ctx context.Context) ([]entity.Friend, error) {
	return r.friends.List(), nil
}

func (r *FriendRepository) Update(ctx context.Context, friend *entity.Friend) (bool, error) {
	if _, ok := r.friends.Get(friend.ID); !ok {
		return false, nil
	}
	r.friends.Put(friend.ID, *friend)
	return true, nil
}

// MapByID returns the registry as an id-keyed snapshot for event lookups
func (r *FriendRepository) MapByID(ctx context.Context) (map[string]entity.Friend, error) {
	all := r.friends.List()
	out := make(map[string]entity.Friend, len(all))
	for _, f := range all {
		out[f.ID] = f
	}
	return out, nil
}
