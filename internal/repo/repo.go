// Package repo defines the storage interfaces the handlers depend on.
// Two drivers implement them: jsonrepo (flat JSON documents, the default)
// and gormrepo (sqlite, transactional).
package repo

import (
	"context"
	"errors"

	"github.com/aminebt/khadamat/internal/models"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrNotFound      = errors.New("not found")
)

type Users interface {
	// Create appends a new user. Fails with ErrUsernameTaken on an exact
	// username match without touching the collection.
	Create(ctx context.Context, user models.User) error
	GetByUsername(ctx context.Context, username string) (models.User, error)
}

type App interface {
	Services(ctx context.Context) ([]models.Service, error)
	AddService(ctx context.Context, service models.Service) error
	// DeleteService removes every service whose name matches exactly.
	DeleteService(ctx context.Context, name string) error

	Alerts(ctx context.Context) ([]models.Alert, error)
	// SetAlert replaces the whole alerts collection with the given alert.
	SetAlert(ctx context.Context, alert models.Alert) error

	Requests(ctx context.Context) ([]models.Request, error)
	// AddRequest assigns the request id and date, appends it and returns
	// the stored request.
	AddRequest(ctx context.Context, request models.Request) (models.Request, error)
}
