// Package directory provides the employee directory core: the session that
// owns the collection, its mutation intents, and the paginated view consumed
// by presentation. Presentation is an external collaborator - it renders
// the state exposed here and delivers user intents as plain method calls.
package directory

import (
	"log/slog"

	"github.com/rai/employee-directory/modules/directory/application/commands"
	"github.com/rai/employee-directory/modules/directory/application/form"
	"github.com/rai/employee-directory/modules/directory/application/queries"
	"github.com/rai/employee-directory/modules/directory/domain"
	"github.com/rai/employee-directory/modules/shared/events"
)

// Config holds the session dependencies.
type Config struct {
	// Store owns the collection for this session. Constructed once per
	// session and passed by handle - no ambient singleton.
	Store domain.CollectionStore
	// Loader performs the one startup fetch.
	Loader Loader
	// EventPublisher receives the mutation events that drive notifications.
	// Optional; nil disables publishing.
	EventPublisher events.Publisher
	// PageSize is the window size; defaults to queries.DefaultPageSize.
	PageSize int
	Logger   *slog.Logger
}

// NewSession wires the command, query and form handlers around the store
// and returns a session ready to Load.
func NewSession(cfg Config) *Session {
	if cfg.PageSize <= 0 {
		cfg.PageSize = queries.DefaultPageSize
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	logger := cfg.Logger.With("module", "directory")

	addUser := commands.NewAddUserHandler(cfg.Store, cfg.EventPublisher)
	updateUser := commands.NewUpdateUserHandler(cfg.Store, cfg.EventPublisher)
	deleteUser := commands.NewDeleteUserHandler(cfg.Store, cfg.EventPublisher)
	listPage := queries.NewListPageHandler(cfg.Store)

	return &Session{
		store:      cfg.Store,
		loader:     cfg.Loader,
		logger:     logger,
		pageSize:   cfg.PageSize,
		page:       1,
		status:     Status{Phase: PhaseIdle},
		form:       form.NewSession(cfg.Store, addUser, updateUser),
		deleteUser: deleteUser,
		listPage:   listPage,
	}
}
