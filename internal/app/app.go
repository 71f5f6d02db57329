// Package app builds the state containers the front-ends work on.
//
// There are no package-level stores: each App owns its own todo and user
// stores, and whoever needs them is handed the App (or a single store).
package app

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/demo/internal/store/todostore"
	"github.com/idilsaglam/demo/internal/store/userstore"
	"github.com/idilsaglam/demo/internal/userapi"
)

type App struct {
	Todos  *todostore.Store
	Users  *userstore.Store
	Logger *zap.Logger
}

// New constructs the stores from cfg.
func New(cfg Config) *App {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	api := userapi.New(cfg.UsersURL, cfg.HTTP)
	return &App{
		Todos:  todostore.New(),
		Users:  userstore.New(api, userstore.WithLogger(log.Named("users"))),
		Logger: log,
	}
}

// Reset empties both stores.
func (a *App) Reset() {
	a.Todos.Reset()
	a.Users.Reset()
}
