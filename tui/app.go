package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/schoolreview/app"
	"github.com/CrestNiraj12/schoolreview/domain"
	"github.com/CrestNiraj12/schoolreview/infra/config"
	"github.com/CrestNiraj12/schoolreview/tui/common"
	"github.com/CrestNiraj12/schoolreview/tui/compose"
	"github.com/CrestNiraj12/schoolreview/tui/entity"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Entities  app.EntityService
	Comments  app.CommentService
	Viewer    app.ViewerService
	Editor    app.DraftEditor
	Logger    *zap.Logger
	StatePath string // empty disables remembering the last route
	Initial   *Route // nil opens the go-to prompt
}

type activeView int

const (
	entityView activeView = iota
	composeView
)

// createdMsg is sent after a new review/report has been published.
type createdMsg struct {
	Kind   domain.EntityKind
	Entity domain.Entity
	Err    error
}

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps      Deps
	log       *zap.Logger
	active    activeView
	entity    entity.Model
	compose   compose.Model
	prompt    textinput.Model
	prompting bool
	opened    bool
	keys      common.KeyMap
	status    string // Transient status message (e.g. "Review published")
	initCmd   tea.Cmd
	width     int
	height    int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "review 42 / report 7"
	ti.CharLimit = 64

	kind := domain.KindReview
	if deps.Initial != nil {
		kind = deps.Initial.Kind
	}

	a := App{
		deps:   deps,
		log:    log,
		active: entityView,
		entity: entity.New(kind, entity.Deps{
			Entities: deps.Entities,
			Comments: deps.Comments,
			Viewer:   deps.Viewer,
			Editor:   deps.Editor,
			Logger:   log,
		}),
		prompt: ti,
		keys:   common.DefaultKeyMap(),
	}

	if deps.Initial != nil {
		a.initCmd = a.openRoute(*deps.Initial)
	} else {
		a.prompting = true
		a.prompt.Focus()
	}
	return a
}

// Init starts the spinner and the first route's requests.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.entity.Init(), a.initCmd)
}

// openRoute points the controller at r and remembers it.
func (a *App) openRoute(r Route) tea.Cmd {
	var cmd tea.Cmd
	a.entity, cmd = a.entity.Open(r.Kind, r.ID)
	a.opened = true
	a.active = entityView
	return tea.Batch(cmd, a.saveState(r))
}

func (a App) saveState(r Route) tea.Cmd {
	path := a.deps.StatePath
	if path == "" {
		return nil
	}
	log := a.log
	return func() tea.Msg {
		if err := config.SaveUIState(path, config.UIState{Kind: r.Kind.Segment(), ID: r.ID}); err != nil {
			log.Warn("save ui state", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
}

func (a App) publish(msg compose.DoneMsg) tea.Cmd {
	entities := a.deps.Entities
	return func() tea.Msg {
		e, err := entities.Save(context.Background(), msg.Kind, msg.Draft())
		return createdMsg{Kind: msg.Kind, Entity: e, Err: err}
	}
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.prompt.Width = max(10, msg.Width-6)
		a.entity.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.prompting {
			return a.handlePromptKey(msg)
		}
		if a.active == entityView && !a.entity.IsCapturingInput() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, a.keys.Open):
				a.prompting = true
				a.status = ""
				a.prompt.Reset()
				a.prompt.Focus()
				return a, textinput.Blink
			}
		}

	case entity.NewEntityMsg:
		a.active = composeView
		a.status = ""
		if msg.UseEditor {
			a.compose = compose.NewEditor(a.deps.Editor, msg.Kind, msg.School)
		} else {
			a.compose = compose.NewInline(msg.Kind, msg.School)
		}
		return a, a.compose.Init()

	case compose.DoneMsg:
		if msg.Err != nil {
			a.active = entityView
			a.status = "Error: " + msg.Err.Error()
			return a, nil
		}
		if msg.Content == "" {
			a.active = entityView
			a.status = "Cancelled."
			return a, nil
		}
		a.compose.SetPublishing()
		return a, a.publish(msg)

	case createdMsg:
		if msg.Err != nil {
			a.log.Warn("publish failed", zap.String("kind", msg.Kind.Segment()), zap.Error(msg.Err))
			a.compose.SetError(msg.Err)
			return a, nil
		}
		a.status = msg.Kind.Title() + " published"
		return a, a.openRoute(Route{Kind: msg.Kind, ID: strconv.FormatInt(msg.Entity.ID, 10)})

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.entity, cmd = a.entity.Update(msg)
		return a, cmd
	}

	// Keys go to the visible view; results always reach the controller so
	// its toasts and pending flags settle while composing.
	if _, isKey := msg.(tea.KeyMsg); isKey {
		var cmd tea.Cmd
		switch a.active {
		case entityView:
			a.entity, cmd = a.entity.Update(msg)
		case composeView:
			a.compose, cmd = a.compose.Update(msg)
		}
		return a, cmd
	}

	var entityCmd, composeCmd tea.Cmd
	a.entity, entityCmd = a.entity.Update(msg)
	if a.active == composeView {
		a.compose, composeCmd = a.compose.Update(msg)
	}
	return a, tea.Batch(entityCmd, composeCmd)
}

func (a App) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.prompting = false
		a.prompt.Blur()
		return a, nil
	case tea.KeyEnter:
		r, err := ParseRoute(a.prompt.Value(), a.entity.Kind())
		if err != nil {
			a.status = "Error: " + err.Error()
			return a, nil
		}
		a.prompting = false
		a.prompt.Blur()
		a.status = ""
		return a, a.openRoute(r)
	}
	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return a, cmd
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch {
	case a.active == composeView:
		s = a.compose.View()
	case a.opened:
		s = a.entity.View()
	default:
		s = common.AppTitleStyle.Render("🏫 SchoolReview") + "\n\n" +
			"  Open a review or report, e.g. \"review 42\".\n"
	}

	if a.prompting {
		s += "\n" + a.prompt.View()
	}

	// Append transient status if present.
	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}

	return s
}
