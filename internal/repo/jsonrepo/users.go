// Package jsonrepo implements the repositories over flat JSON documents.
package jsonrepo

import (
	"context"

	"github.com/aminebt/khadamat/internal/docstore"
	"github.com/aminebt/khadamat/internal/models"
	"github.com/aminebt/khadamat/internal/repo"
)

const usersDocument = "users"

type UserRepo struct {
	Store docstore.Store
}

func NewUserRepo(store docstore.Store) *UserRepo {
	return &UserRepo{Store: store}
}

func (r *UserRepo) Create(ctx context.Context, user models.User) error {
	var doc models.UsersDocument
	return r.Store.Mutate(usersDocument, &doc, func() error {
		for _, u := range doc.Users {
			if u.Username == user.Username {
				return repo.ErrUsernameTaken
			}
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var doc models.UsersDocument
	if err := r.Store.View(usersDocument, &doc); err != nil {
		return models.User{}, err
	}
	for _, u := range doc.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}
