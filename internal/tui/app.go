package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kwhalen/repbook/internal/domain"
	"github.com/kwhalen/repbook/internal/search"
	"github.com/kwhalen/repbook/internal/session"
	"github.com/kwhalen/repbook/internal/tui/components"
)

// ViewState is the active top-level view. The dashboard, collection, and
// admin states are reachable only while a session is held; login and
// register are the only states without one.
type ViewState int

const (
	StateLogin ViewState = iota
	StateRegister
	StateDashboard
	StateCollection
	StateAdmin
)

// DashboardMode is the nested interaction mode within the dashboard view.
// Exactly one mode is active; there are no ad hoc boolean flags.
type DashboardMode int

const (
	ModeBrowse DashboardMode = iota
	ModeFilter        // typing into the substring filter
	ModeCreate        // new-exercise form
	ModeEdit          // edit form for the selected exercise
	ModeSort          // sort-field modal
	ModeRate          // rating modal
	ModeUsers         // favorited-by/saved-by panel
	ModeUpload        // video upload flow
	ModeQuickSearch   // fuzzy quick-search overlay
	ModeConfirmDelete // delete confirmation
)

// Model is the main Bubble Tea model for the application
type Model struct {
	state ViewState
	mode  DashboardMode
	keys  KeyMap

	// Collaborators
	sessions   *session.Manager
	exercises  domain.ExerciseRepository
	collection domain.CollectionRepository
	admin      domain.AdminRepository
	videos     domain.VideoStorage // nil when uploads are not configured
	logger     *slog.Logger

	// Dimensions
	width  int
	height int

	// UI state
	loading      bool
	spinnerFrame int
	statusMsg    string
	statusIsErr  bool

	// Dashboard data. fetched is the list exactly as the server returned
	// it; the visible list is a pure projection recomputed on demand.
	fetched     []domain.Exercise
	controls    search.Controls
	filterInput textinput.Model
	list        components.ExerciseList
	quickIndex  *search.QuickIndex

	// Collection data
	collectionList components.ExerciseList

	// Admin state
	dataSource domain.DataSource

	// Components
	loginForm    components.AuthForm
	registerForm components.AuthForm
	exerciseForm components.ExerciseForm
	sortModal    components.SortModal
	rateModal    components.RateModal
	usersPanel   components.UsersPanel
	uploadModal  components.UploadModal
	quickSearch  components.QuickSearch
	alert        components.Alert

	// Edit/delete context
	editingID     int
	pendingDelete *domain.Exercise

	// In-flight upload
	transfer         *domain.Transfer
	uploadFile       *os.File
	uploadExerciseID int
	uploadName       string
}

// NewModel creates the application model
func NewModel(
	sessions *session.Manager,
	exercises domain.ExerciseRepository,
	collection domain.CollectionRepository,
	admin domain.AdminRepository,
	videos domain.VideoStorage,
	defaultSort search.SortField,
	logger *slog.Logger,
) *Model {
	if logger == nil {
		logger = slog.Default()
	}

	filter := textinput.New()
	filter.Placeholder = "filter..."
	filter.CharLimit = 64
	filter.Width = 32
	filter.Prompt = "/ "

	m := &Model{
		state:        StateLogin,
		keys:         DefaultKeyMap(),
		sessions:     sessions,
		exercises:    exercises,
		collection:   collection,
		admin:        admin,
		videos:       videos,
		logger:       logger,
		controls:     search.Controls{SortBy: defaultSort},
		filterInput:  filter,
		loginForm:    components.NewAuthForm("Log in"),
		registerForm: components.NewAuthForm("Create account"),
		exerciseForm: components.NewExerciseForm(),
		sortModal:    components.NewSortModal(),
		rateModal:    components.NewRateModal(),
		uploadModal:  components.NewUploadModal(),
		quickSearch:  components.NewQuickSearch(),
	}

	if sessions.IsAuthenticated() {
		m.state = StateDashboard
	}
	return m
}

// Init starts the initial fetch when a persisted session was restored
func (m *Model) Init() tea.Cmd {
	if m.state == StateDashboard {
		m.loading = true
		return tea.Batch(LoadExercisesCmd(m.exercises), TickCmd(spinnerInterval))
	}
	return nil
}

const spinnerInterval = 80 * time.Millisecond

// Update handles all messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if m.loading {
			m.spinnerFrame++
			return m, TickCmd(spinnerInterval)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.handleAsync(msg)
}

// handleAsync handles results of async operations
func (m *Model) handleAsync(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrMsg:
		m.loading = false
		m.logger.Error("operation failed", "context", msg.Context, "error", msg.Err)
		m.alert.ShowError("Failed "+msg.Context, userFacing(msg.Err))
		return m, nil

	case RegisteredMsg:
		m.loading = false
		m.state = StateLogin
		m.loginForm.Reset()
		m.alert.ShowInfo("Account created", fmt.Sprintf("Account %q created. Please log in.", msg.Username))
		return m, nil

	case LoggedInMsg:
		m.state = StateDashboard
		m.mode = ModeBrowse
		m.loading = true
		return m, tea.Batch(LoadExercisesCmd(m.exercises), TickCmd(spinnerInterval))

	case LoggedOutMsg:
		m.resetToLogin()
		if msg.Forced {
			m.alert.ShowError("Session ended", msg.Reason)
		}
		return m, nil

	case SessionRefreshedMsg:
		m.loading = false
		m.alert.ShowInfo("Session refreshed", "Token refreshed successfully.")
		return m, nil

	case ExercisesLoadedMsg:
		m.loading = false
		m.fetched = msg.Exercises
		m.quickIndex = search.NewQuickIndex(msg.Exercises)
		m.applyProjection()
		m.setStatus(fmt.Sprintf("%d exercises", len(msg.Exercises)), false)
		return m, nil

	case CollectionLoadedMsg:
		m.loading = false
		m.collectionList.SetItems(msg.Exercises)
		m.setStatus(fmt.Sprintf("%d in collection", len(msg.Exercises)), false)
		return m, nil

	case ExerciseMutatedMsg:
		// Only a server-acknowledged mutation triggers the resync fetch
		m.setStatus(fmt.Sprintf("%s %q", msg.Action, msg.Name), false)
		m.loading = true
		return m, tea.Batch(LoadExercisesCmd(m.exercises), TickCmd(spinnerInterval))

	case ToggleAppliedMsg:
		m.loading = true
		return m, tea.Batch(LoadExercisesCmd(m.exercises), TickCmd(spinnerInterval))

	case ToggleFailedMsg:
		// The flip lives only in the visible rows; rebuilding the
		// projection from the last fetch restores what the server holds
		m.loading = false
		m.applyProjection()
		m.logger.Error("toggle rejected", "kind", msg.Kind, "exercise_id", msg.ExerciseID, "error", msg.Err)
		m.alert.ShowError("Failed toggling "+msg.Kind, userFacing(msg.Err))
		return m, nil

	case UsersLoadedMsg:
		m.loading = false
		name := ""
		if sel := m.list.Selected(); sel != nil && sel.ID == msg.ExerciseID {
			name = sel.Name
		}
		m.mode = ModeUsers
		m.usersPanel.Show(name, msg.Users)
		return m, nil

	case MigrationDoneMsg:
		m.loading = false
		m.alert.ShowInfo("Migration complete", msg.Message)
		return m, nil

	case UploadEventMsg:
		return m.handleUploadEvent(msg)

	case UploadChannelClosedMsg:
		return m, nil
	}

	return m, nil
}

// handleUploadEvent advances the upload flow on each transfer event
func (m *Model) handleUploadEvent(msg UploadEventMsg) (tea.Model, tea.Cmd) {
	if !msg.Event.Done {
		m.uploadModal.SetPercent(msg.Event.Percent)
		return m, WaitForUploadCmd(msg.ExerciseID, m.transfer)
	}

	// Terminal event: release the source file either way
	m.closeUploadFile()
	m.transfer = nil
	m.uploadModal.Hide()
	m.mode = ModeBrowse

	if msg.Event.Err != nil {
		if errors.Is(msg.Event.Err, domain.ErrUploadCancelled) {
			m.setStatus("upload cancelled", false)
			return m, nil
		}
		m.alert.ShowError("Upload failed", userFacing(msg.Event.Err))
		return m, nil
	}

	// The widget itself never talks to the exercise server; attaching the
	// URL is a separate update call.
	return m, AttachVideoCmd(m.exercises, msg.ExerciseID, msg.Event.URL, m.uploadName)
}

// handleKey dispatches key events by state
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A visible alert blocks everything until dismissed
	if m.alert.IsVisible() {
		switch msg.String() {
		case "enter", "esc", " ":
			m.alert.Hide()
		}
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case StateLogin:
		return m.updateLogin(msg)
	case StateRegister:
		return m.updateRegister(msg)
	case StateDashboard:
		return m.updateDashboard(msg)
	case StateCollection:
		return m.updateCollection(msg)
	case StateAdmin:
		return m.updateAdmin(msg)
	}
	return m, nil
}

func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		m.state = StateRegister
		m.registerForm.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	var submitted bool
	m.loginForm, cmd, submitted = m.loginForm.Update(msg)
	if submitted {
		if !m.loginForm.Valid() {
			m.alert.ShowError("Login", "Username and password are required.")
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(
			LoginCmd(m.sessions, m.loginForm.Username(), m.loginForm.Password()),
			TickCmd(spinnerInterval),
		)
	}
	return m, cmd
}

func (m *Model) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateLogin
		m.loginForm.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	var submitted bool
	m.registerForm, cmd, submitted = m.registerForm.Update(msg)
	if submitted {
		if !m.registerForm.Valid() {
			m.alert.ShowError("Registration", "Username and password are required.")
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(
			RegisterCmd(m.sessions, m.registerForm.Username(), m.registerForm.Password()),
			TickCmd(spinnerInterval),
		)
	}
	return m, cmd
}

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeBrowse:
		return m.updateDashboardBrowse(msg)
	case ModeFilter:
		return m.updateDashboardFilter(msg)
	case ModeCreate, ModeEdit:
		return m.updateExerciseForm(msg)
	case ModeSort:
		return m.updateSortModal(msg)
	case ModeRate:
		return m.updateRateModal(msg)
	case ModeUsers:
		if msg.String() == "esc" || msg.String() == "enter" || msg.String() == "u" {
			m.usersPanel.Hide()
			m.mode = ModeBrowse
		}
		return m, nil
	case ModeUpload:
		return m.updateUploadModal(msg)
	case ModeQuickSearch:
		return m.updateQuickSearch(msg)
	case ModeConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m *Model) updateDashboardBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.list.MoveUp()
	case key.Matches(msg, keys.Down):
		m.list.MoveDown()

	case key.Matches(msg, keys.Collection):
		return m.enterCollection()
	case key.Matches(msg, keys.Admin):
		m.state = StateAdmin
		return m, nil

	case key.Matches(msg, keys.Filter):
		m.mode = ModeFilter
		m.filterInput.SetValue(m.controls.Query)
		m.filterInput.Focus()
	case key.Matches(msg, keys.QuickSearch):
		if m.quickIndex != nil {
			m.mode = ModeQuickSearch
			m.quickSearch.Show(m.quickIndex)
		}
	case key.Matches(msg, keys.Sort):
		m.mode = ModeSort
		m.sortModal.Show(m.controls.SortBy)
	case key.Matches(msg, keys.FavoritesOnly):
		m.controls.FavoritesOnly = !m.controls.FavoritesOnly
		m.applyProjection()
	case key.Matches(msg, keys.Reload):
		m.loading = true
		return m, tea.Batch(LoadExercisesCmd(m.exercises), TickCmd(spinnerInterval))

	case key.Matches(msg, keys.New):
		m.mode = ModeCreate
		m.exerciseForm.ShowCreate()
	case key.Matches(msg, keys.Edit):
		if sel := m.list.Selected(); sel != nil {
			m.mode = ModeEdit
			m.editingID = sel.ID
			m.exerciseForm.ShowEdit(*sel)
		}
	case key.Matches(msg, keys.Delete):
		if sel := m.list.Selected(); sel != nil {
			m.mode = ModeConfirmDelete
			ex := *sel
			m.pendingDelete = &ex
		}

	case key.Matches(msg, keys.Favorite):
		if sel := m.list.Selected(); sel != nil {
			id := sel.ID
			nowFavorited := m.list.FlipFavorite(id)
			return m, ToggleFavoriteCmd(m.exercises, id, nowFavorited)
		}
	case key.Matches(msg, keys.Save):
		if sel := m.list.Selected(); sel != nil {
			id := sel.ID
			nowSaved := m.list.FlipSaved(id)
			return m, ToggleSaveCmd(m.exercises, id, nowSaved)
		}
	case key.Matches(msg, keys.Rate):
		if sel := m.list.Selected(); sel != nil {
			m.mode = ModeRate
			m.rateModal.Show(sel.Name)
		}
	case key.Matches(msg, keys.Users):
		if sel := m.list.Selected(); sel != nil {
			m.loading = true
			return m, tea.Batch(LoadUsersCmd(m.exercises, sel.ID), TickCmd(spinnerInterval))
		}
	case key.Matches(msg, keys.Upload):
		if sel := m.list.Selected(); sel != nil {
			if m.videos == nil {
				m.alert.ShowError("Upload", "No object store is configured. Set storage.bucket in the config file.")
				return m, nil
			}
			m.mode = ModeUpload
			m.uploadExerciseID = sel.ID
			m.uploadName = sel.Name
			m.uploadModal.Show(sel.Name)
		}

	case key.Matches(msg, keys.Refresh):
		m.loading = true
		return m, tea.Batch(RefreshCmd(m.sessions), TickCmd(spinnerInterval))
	case key.Matches(msg, keys.Logout):
		return m, LogoutCmd(m.sessions)

	case key.Matches(msg, keys.Help):
		m.alert.ShowInfo("Help", helpText)
	}
	return m, nil
}

func (m *Model) updateDashboardFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.mode = ModeBrowse
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.controls.Query = m.filterInput.Value()
	m.applyProjection()
	return m, cmd
}

func (m *Model) updateExerciseForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = ModeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	var submitted bool
	m.exerciseForm, cmd, submitted = m.exerciseForm.Update(msg)
	if !submitted {
		return m, cmd
	}

	draft, err := m.exerciseForm.Draft()
	if err != nil {
		m.alert.ShowError("Invalid exercise", err.Error())
		return m, nil
	}

	editing := m.mode == ModeEdit
	m.mode = ModeBrowse
	m.loading = true
	if editing {
		return m, tea.Batch(UpdateExerciseCmd(m.exercises, m.editingID, draft), TickCmd(spinnerInterval))
	}
	return m, tea.Batch(CreateExerciseCmd(m.exercises, draft), TickCmd(spinnerInterval))
}

func (m *Model) updateSortModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.sortModal.Hide()
		m.mode = ModeBrowse
	case "up", "k":
		m.sortModal.MoveUp()
	case "down", "j":
		m.sortModal.MoveDown()
	case "enter":
		m.controls.SortBy = m.sortModal.Selection()
		m.sortModal.Hide()
		m.mode = ModeBrowse
		m.applyProjection()
	}
	return m, nil
}

func (m *Model) updateRateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.rateModal.Hide()
		m.mode = ModeBrowse
	case "left", "h":
		m.rateModal.Decrease()
	case "right", "l":
		m.rateModal.Increase()
	case "1", "2", "3", "4", "5":
		m.rateModal.SetRating(int(msg.String()[0] - '0'))
	case "enter":
		sel := m.list.Selected()
		m.rateModal.Hide()
		m.mode = ModeBrowse
		if sel != nil {
			m.loading = true
			return m, tea.Batch(
				RateExerciseCmd(m.exercises, sel.ID, m.rateModal.Rating(), sel.Name),
				TickCmd(spinnerInterval),
			)
		}
	}
	return m, nil
}

func (m *Model) updateUploadModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		if m.transfer != nil {
			// Cancellation is surfaced through the terminal event
			m.transfer.Cancel()
			return m, nil
		}
		m.uploadModal.Hide()
		m.mode = ModeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	var submitted bool
	m.uploadModal, cmd, submitted = m.uploadModal.Update(msg)
	if !submitted {
		return m, cmd
	}

	return m, m.startUpload(m.uploadModal.Path())
}

// startUpload opens the chosen file and begins the transfer
func (m *Model) startUpload(path string) tea.Cmd {
	f, err := os.Open(path)
	if err != nil {
		m.alert.ShowError("Upload", fmt.Sprintf("Cannot open %s: %v", path, err))
		return nil
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		m.alert.ShowError("Upload", fmt.Sprintf("%s is not a readable file", path))
		return nil
	}

	m.uploadFile = f
	m.uploadModal.StartTransfer()
	m.transfer = m.videos.Upload(context.Background(), m.uploadExerciseID, filepath.Base(path), f, info.Size())
	return WaitForUploadCmd(m.uploadExerciseID, m.transfer)
}

func (m *Model) updateQuickSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.quickSearch.Hide()
		m.mode = ModeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	var chosen bool
	m.quickSearch, cmd, chosen = m.quickSearch.Update(msg)
	if chosen {
		id := m.quickSearch.Selected()
		m.quickSearch.Hide()
		m.mode = ModeBrowse
		m.selectExercise(id)
	}
	return m, cmd
}

func (m *Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		ex := m.pendingDelete
		m.pendingDelete = nil
		m.mode = ModeBrowse
		if ex != nil {
			m.loading = true
			return m, tea.Batch(DeleteExerciseCmd(m.exercises, ex.ID, ex.Name), TickCmd(spinnerInterval))
		}
	case "n", "N", "esc":
		m.pendingDelete = nil
		m.mode = ModeBrowse
	}
	return m, nil
}

func (m *Model) updateCollection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.collectionList.MoveUp()
	case key.Matches(msg, keys.Down):
		m.collectionList.MoveDown()
	case key.Matches(msg, keys.Dashboard), msg.String() == "esc":
		m.state = StateDashboard
	case key.Matches(msg, keys.Admin):
		m.state = StateAdmin
	case key.Matches(msg, keys.Reload):
		m.loading = true
		return m, tea.Batch(LoadCollectionCmd(m.collection), TickCmd(spinnerInterval))
	case key.Matches(msg, keys.Logout):
		return m, LogoutCmd(m.sessions)
	case key.Matches(msg, keys.Refresh):
		m.loading = true
		return m, tea.Batch(RefreshCmd(m.sessions), TickCmd(spinnerInterval))
	}
	return m, nil
}

func (m *Model) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Dashboard), msg.String() == "esc":
		m.state = StateDashboard
	case key.Matches(msg, keys.Collection):
		return m.enterCollection()
	case msg.String() == "t":
		if m.dataSource == domain.DataSourceLocal {
			m.dataSource = domain.DataSourceCloud
		} else {
			m.dataSource = domain.DataSourceLocal
		}
	case msg.String() == "m":
		m.loading = true
		return m, tea.Batch(MigrateCmd(m.admin), TickCmd(spinnerInterval))
	case key.Matches(msg, keys.Logout):
		return m, LogoutCmd(m.sessions)
	case key.Matches(msg, keys.Refresh):
		m.loading = true
		return m, tea.Batch(RefreshCmd(m.sessions), TickCmd(spinnerInterval))
	}
	return m, nil
}

func (m *Model) enterCollection() (tea.Model, tea.Cmd) {
	m.state = StateCollection
	m.loading = true
	return m, tea.Batch(LoadCollectionCmd(m.collection), TickCmd(spinnerInterval))
}

// applyProjection recomputes the visible list from the fetched one. The
// fetched slice is never mutated.
func (m *Model) applyProjection() {
	m.list.SetItems(search.Apply(m.fetched, m.controls))
}

// selectExercise moves the cursor to the exercise with the given ID,
// clearing the filter when it hides the target
func (m *Model) selectExercise(id int) {
	if m.list.Select(id) {
		return
	}

	// Target filtered out; drop the filter and retry once
	m.controls.Query = ""
	m.controls.FavoritesOnly = false
	m.filterInput.SetValue("")
	m.applyProjection()
	m.list.Select(id)
}

// resetToLogin clears all per-session data and returns to the login view
func (m *Model) resetToLogin() {
	m.state = StateLogin
	m.mode = ModeBrowse
	m.loading = false
	m.fetched = nil
	m.quickIndex = nil
	m.list.SetItems(nil)
	m.collectionList.SetItems(nil)
	m.controls.Query = ""
	m.controls.FavoritesOnly = false
	m.loginForm.Reset()
	m.statusMsg = ""
}

// closeUploadFile releases the upload source if one is open
func (m *Model) closeUploadFile() {
	if m.uploadFile != nil {
		m.uploadFile.Close()
		m.uploadFile = nil
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

// userFacing maps sentinel errors to friendlier alert text
func userFacing(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthFailed):
		return "The server rejected the credentials."
	case errors.Is(err, domain.ErrServerUnreachable):
		return "The exercise server could not be reached."
	case errors.Is(err, domain.ErrNotFound):
		return "The record was not found on the server."
	default:
		return err.Error()
	}
}

const helpText = "j/k move · n new · e edit · d delete · f favorite · s save · r rate · " +
	"u users · v upload video · / filter · ctrl+f search · o sort · F favorites only · " +
	"R reload · 1/2/3 views · T refresh token · L logout · q quit"
