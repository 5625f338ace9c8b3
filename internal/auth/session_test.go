package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypejab/triage/internal/board"
	"github.com/hypejab/triage/internal/models"
	"github.com/hypejab/triage/internal/storage"
)

type sessionFixture struct {
	session *Session
	store   *board.Store
	kv      *storage.MemoryKV
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	kv := storage.NewMemoryKV()
	store := board.NewStore()
	bridge := storage.NewBridge(kv, "kanban", store)
	return &sessionFixture{
		session: NewSession(kv, "kanban", bridge),
		store:   store,
		kv:      kv,
	}
}

func (f *sessionFixture) signup(t *testing.T, email, password string) *User {
	t.Helper()
	user, err := f.session.Signup(email, password)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func (f *sessionFixture) addBoardTask(t *testing.T, id string) {
	t.Helper()
	err := f.store.AddTask(models.ColumnDraft, &models.Task{
		ID: id, Title: id, Labels: []string{}, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

// ============================================================================
// SIGNUP
// ============================================================================

func TestSignupActivatesSession(t *testing.T) {
	f := newSessionFixture(t)

	user := f.signup(t, "alice@example.com", "secret123")

	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice@example.com", f.session.CurrentUserID())
	assert.Len(t, f.store.Columns(), 5, "new user should start with the default board")
}

func TestSignupRejectsBadEmail(t *testing.T) {
	f := newSessionFixture(t)

	for _, email := range []string{"", "noat.example.com", "a b@example.com", "a@b"} {
		_, err := f.session.Signup(email, "secret123")
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q accepted", email)
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.session.Signup("alice@example.com", "12345")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.Nil(t, f.session.Current())
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	f := newSessionFixture(t)
	f.signup(t, "alice@example.com", "secret123")

	_, err := f.session.Signup("alice@example.com", "different456")
	assert.ErrorIs(t, err, ErrUserExists)
}

// ============================================================================
// LOGIN / LOGOUT
// ============================================================================

func TestLoginWithCorrectPassword(t *testing.T) {
	f := newSessionFixture(t)
	f.signup(t, "alice@example.com", "secret123")
	f.session.Logout()

	user, err := f.session.Login("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newSessionFixture(t)
	f.signup(t, "alice@example.com", "secret123")
	f.session.Logout()

	_, err := f.session.Login("alice@example.com", "wrongpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, f.session.Current())
}

func TestLoginUnknownUserSameErrorAsWrongPassword(t *testing.T) {
	f := newSessionFixture(t)
	f.signup(t, "alice@example.com", "secret123")
	f.session.Logout()

	_, unknownErr := f.session.Login("bob@example.com", "secret123")
	_, wrongErr := f.session.Login("alice@example.com", "nope99")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr, "unknown user and wrong password must be indistinguishable")
}

func TestLogoutResetsBoardButKeepsSnapshot(t *testing.T) {
	f := newSessionFixture(t)
	f.signup(t, "alice@example.com", "secret123")
	f.addBoardTask(t, "t1")

	f.session.Logout()

	assert.Nil(t, f.session.Current())
	assert.Empty(t, f.store.Tasks()[models.ColumnDraft])

	// The persisted snapshot survives logout and returns on the next login
	_, err := f.session.Login("alice@example.com", "secret123")
	require.NoError(t, err)
	require.Len(t, f.store.Tasks()[models.ColumnDraft], 1)
	assert.Equal(t, "t1", f.store.Tasks()[models.ColumnDraft][0].ID)
}

func TestLoginOverActiveSessionSwitchesUsers(t *testing.T) {
	f := newSessionFixture(t)
	f.signup(t, "alice@example.com", "secret123")
	f.addBoardTask(t, "alice-task")

	f.signup(t, "bob@example.com", "secret123")

	assert.Equal(t, "bob@example.com", f.session.CurrentUserID())
	assert.Empty(t, f.store.Tasks()[models.ColumnDraft], "alice's board leaked into bob's session")
}

// ============================================================================
// SESSION RESTORE
// ============================================================================

func TestRestoreResumesSession(t *testing.T) {
	f := newSessionFixture(t)
	f.signup(t, "alice@example.com", "secret123")
	f.addBoardTask(t, "t1")

	// A new process over the same storage
	store2 := board.NewStore()
	bridge2 := storage.NewBridge(f.kv, "kanban", store2)
	session2 := NewSession(f.kv, "kanban", bridge2)

	user := session2.Restore()
	require.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)
	require.Len(t, store2.Tasks()[models.ColumnDraft], 1)
	assert.Equal(t, "t1", store2.Tasks()[models.ColumnDraft][0].ID)
}

func TestRestoreWithoutSession(t *testing.T) {
	f := newSessionFixture(t)

	assert.Nil(t, f.session.Restore())
}

func TestRestoreAfterLogout(t *testing.T) {
	f := newSessionFixture(t)
	f.signup(t, "alice@example.com", "secret123")
	f.session.Logout()

	store2 := board.NewStore()
	bridge2 := storage.NewBridge(f.kv, "kanban", store2)
	session2 := NewSession(f.kv, "kanban", bridge2)

	assert.Nil(t, session2.Restore(), "logged-out session restored")
}

// ============================================================================
// ACCOUNT DELETION
// ============================================================================

func TestDeleteAccountWipesStoredState(t *testing.T) {
	f := newSessionFixture(t)
	f.signup(t, "alice@example.com", "secret123")
	f.addBoardTask(t, "t1")

	require.NoError(t, f.session.DeleteAccount())

	assert.Nil(t, f.session.Current())

	// Registry record is gone: credentials no longer work
	_, err := f.session.Login("alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Board snapshot is gone: a fresh signup starts clean
	f.signup(t, "alice@example.com", "secret123")
	assert.Empty(t, f.store.Tasks()[models.ColumnDraft])
}

func TestDeleteAccountRequiresLogin(t *testing.T) {
	f := newSessionFixture(t)

	assert.ErrorIs(t, f.session.DeleteAccount(), ErrNotLoggedIn)
}

func TestDeleteAccountSparesPrefixRelatedEmails(t *testing.T) {
	f := newSessionFixture(t)
	// The longer email's registry key starts with the shorter one's key
	f.signup(t, "alice@example.com", "secret123")
	f.addBoardTask(t, "long-task")
	f.signup(t, "alice@example.co", "secret123")

	require.NoError(t, f.session.DeleteAccount())

	_, err := f.session.Login("alice@example.com", "secret123")
	require.NoError(t, err, "deleting alice@example.co wiped alice@example.com's registry record")
	require.Len(t, f.store.Tasks()[models.ColumnDraft], 1)
	assert.Equal(t, "long-task", f.store.Tasks()[models.ColumnDraft][0].ID)
}

func TestDeleteAccountLeavesOtherUsersAlone(t *testing.T) {
	f := newSessionFixture(t)
	f.signup(t, "bob@example.com", "secret123")
	f.addBoardTask(t, "bob-task")
	f.signup(t, "alice@example.com", "secret123")

	require.NoError(t, f.session.DeleteAccount())

	_, err := f.session.Login("bob@example.com", "secret123")
	require.NoError(t, err)
	require.Len(t, f.store.Tasks()[models.ColumnDraft], 1)
	assert.Equal(t, "bob-task", f.store.Tasks()[models.ColumnDraft][0].ID)
}
