// Package app wires configuration, documents, key bindings and the
// dispatcher into one Application.
package app

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/dshills/treenav/internal/config"
	"github.com/dshills/treenav/internal/dispatcher"
	"github.com/dshills/treenav/internal/dispatcher/handler"
	"github.com/dshills/treenav/internal/dispatcher/handlers/editor"
	structurehandler "github.com/dshills/treenav/internal/dispatcher/handlers/structure"
	"github.com/dshills/treenav/internal/engine"
	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/engine/syntax/treesitter"
	"github.com/dshills/treenav/internal/input"
	"github.com/dshills/treenav/internal/input/keymap"
)

// Application is the central coordinator for all treenav components.
type Application struct {
	mu sync.Mutex // serializes dispatches on the active document

	config *config.Config
	logger *Logger

	documents  *DocumentManager
	keymaps    *keymap.Registry
	input      *input.Handler
	dispatcher *dispatcher.Dispatcher
	structure  *structurehandler.Handler
	editor     *editor.Handler

	closeParser func()
}

// Options configures the application.
type Options struct {
	// Logger receives application logs. Defaults to a logger configured
	// from the [log] section.
	Logger *Logger

	// Parser builds syntax trees. Defaults to the tree-sitter parser.
	Parser engine.Parser

	// EnableMetrics enables dispatcher metrics.
	EnableMetrics bool
}

// New creates an Application from cfg. A nil cfg uses config.Default.
func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	app := &Application{config: cfg, logger: opts.Logger}

	if err := app.bootstrap(opts); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap(opts Options) error {
	// 1. Logging
	if app.logger == nil {
		lc := DefaultLoggerConfig()
		lc.Level = ParseLogLevel(app.config.Log.Level)
		lc.Format = app.config.Log.Format
		app.logger = NewLogger(lc)
	}

	// 2. Documents
	parser := opts.Parser
	if parser == nil {
		p := treesitter.NewParser()
		app.closeParser = p.Close
		parser = p
	}
	app.documents = NewDocumentManager(parser, app.config.Editor.TabWidth, app.config.Editor.UndoLimit)

	// 3. Key bindings
	keymaps, err := app.config.Keymaps()
	if err != nil {
		return &InitError{Component: "keymaps", Err: err}
	}
	app.keymaps = keymaps
	app.input = input.NewHandler(keymaps, input.CommandResolverFunc(structurehandler.ResolveCommand))

	// 4. Handlers
	supertab, err := app.config.SupertabOptions()
	if err != nil {
		return &InitError{Component: "supertab", Err: err}
	}
	app.editor = editor.NewHandlerWithConfig(app.config.Editor.IndentSize, app.config.Editor.UseTabs)
	app.structure = structurehandler.NewHandler(
		structurehandler.WithSupertabOptions(supertab),
		structurehandler.WithIndenter(app.editor),
	)

	// 5. Dispatcher
	dc := dispatcher.DefaultConfig()
	if opts.EnableMetrics {
		dc = dc.WithMetrics()
	}
	app.dispatcher = dispatcher.New(dc)
	app.dispatcher.SetLogger(app.logger.WithComponent("dispatcher"))
	app.dispatcher.RegisterNamespace(structurehandler.Namespace, app.structure)
	app.dispatcher.RegisterNamespace(app.editor.Namespace(), app.editor)

	app.logger.Debug("application initialized (supertab=%s, policy=%s)", app.config.Keys.Supertab, supertab.Policy)
	return nil
}

// Close releases the parser.
func (app *Application) Close() {
	if app.closeParser != nil {
		app.closeParser()
	}
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Documents returns the document manager.
func (app *Application) Documents() *DocumentManager {
	return app.documents
}

// Keymaps returns the key binding registry.
func (app *Application) Keymaps() *keymap.Registry {
	return app.keymaps
}

// Dispatcher returns the dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Run executes a command or action name on the active document with the
// given repeat count.
func (app *Application) Run(ctx context.Context, command string, count int) (handler.Result, error) {
	action, ok := structurehandler.ResolveCommand(command)
	if !ok {
		return handler.Result{}, errors.Wrapf(ErrUnknownCommand, "%q", command)
	}
	return app.dispatch(ctx, command, input.NewAction(action).WithCount(count).WithSource(input.SourceAPI))
}

// HandleKey executes the command bound to the key spec in mode on the
// active document.
func (app *Application) HandleKey(ctx context.Context, mode, spec string) (handler.Result, error) {
	action, ok := app.input.HandleSpec(mode, spec)
	if !ok {
		return handler.Result{}, errors.Wrapf(ErrUnboundKey, "%s in %s mode", spec, mode)
	}
	return app.dispatch(ctx, spec, action)
}

// RunCommand runs command once and returns the resulting selection.
func (app *Application) RunCommand(ctx context.Context, command string) (cursor.Selection, error) {
	if _, err := app.Run(ctx, command, 1); err != nil {
		return cursor.Selection{}, err
	}
	return app.documents.Active().Selection(), nil
}

func (app *Application) dispatch(ctx context.Context, command string, action input.Action) (handler.Result, error) {
	doc := app.documents.Active()
	if doc == nil {
		return handler.Result{}, ErrNoActiveDocument
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	app.dispatcher.SetDocument(doc)
	result := app.dispatcher.DispatchContext(ctx, action)
	app.logger.Debug("%s -> %s (%s)", command, action.Name, result.Status)

	if result.IsError() {
		return result, &CommandError{Command: command, Target: doc.Path(), Err: result.Error}
	}
	return result, nil
}

// Selection returns the selection of the active document.
func (app *Application) Selection() (cursor.Selection, error) {
	doc := app.documents.Active()
	if doc == nil {
		return cursor.Selection{}, ErrNoActiveDocument
	}
	return doc.Selection(), nil
}

// SetSelection replaces the selection of the active document.
func (app *Application) SetSelection(sel cursor.Selection) error {
	doc := app.documents.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	doc.SetSelection(sel)
	return nil
}
