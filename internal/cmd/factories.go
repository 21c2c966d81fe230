package cmd

import (
	"context"
	"fmt"

	adaptereditor "github.com/bozothegeek/pegasus-frontend/internal/adapters/editor"
	adapterkeyinput "github.com/bozothegeek/pegasus-frontend/internal/adapters/keyinput"
	adapterscripts "github.com/bozothegeek/pegasus-frontend/internal/adapters/scripts"
	adapterstorage "github.com/bozothegeek/pegasus-frontend/internal/adapters/storage"
	"github.com/bozothegeek/pegasus-frontend/internal/config"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/paths"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
	"github.com/bozothegeek/pegasus-frontend/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	Dispatcher       *services.InputDispatcher
	KeyEditorService *services.KeyEditorService
	SettingsService  *services.SettingsService

	// Adapters used directly by commands
	Decoder      ports.InputDecoder
	EditorOpener ports.EditorOpener
	Namer        ports.KeyNamer

	// Internal - for cleanup only
	bindingStore ports.BindingStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(ctx context.Context, backend string) (*Container, error) {
	store, err := newBindingStore(backend)
	if err != nil {
		return nil, err
	}

	decoder := adapterkeyinput.NewDecoder()
	namer := adapterkeyinput.NewNamer()

	keyEditor := services.NewKeyEditorService(ctx, store, decoder, namer)
	dispatcher := services.NewInputDispatcher(keyEditor, decoder)
	settingsService := services.NewSettingsService(
		adapterstorage.NewSettingsFile(),
		adapterstorage.NewGameDirFile(paths.GetGameDirsPath()),
		adapterscripts.NewDefaultRunner(),
	)

	return &Container{
		Decoder:          decoder,
		Dispatcher:       dispatcher,
		EditorOpener:     adaptereditor.NewOpener(),
		KeyEditorService: keyEditor,
		Namer:            namer,
		SettingsService:  settingsService,
		bindingStore:     store,
	}, nil
}

// newBindingStore opens the binding store for backend inside PEGASUS_HOME
func newBindingStore(backend string) (ports.BindingStore, error) {
	logging.Logger.Debug("Opening binding store", "backend", backend)

	switch backend {
	case config.BackendSQLite:
		return adapterstorage.NewSQLiteBindingStore(paths.GetDBPath())
	case config.BackendBolt:
		return adapterstorage.NewBoltBindingStore(paths.GetBoltPath())
	case config.BackendTOML:
		return adapterstorage.NewTOMLBindingStore(paths.GetKeysTOMLPath()), nil
	default:
		return nil, fmt.Errorf("unknown bindings backend '%s'", backend)
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Dispatcher != nil {
		c.Dispatcher.Close()
	}
	if c.bindingStore != nil {
		return c.bindingStore.Close()
	}
	return nil
}
