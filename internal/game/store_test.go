package game

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	s := NewStore(ProgressionRules{})
	if s == nil {
		t.Fatal("NewStore returned nil")
	}
	assert.Equal(t, 0, s.Len())
}

func TestStore_CreateSession_GetSession(t *testing.T) {
	s := NewStore(ProgressionRules{})
	sess := s.CreateSession()
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.False(t, sess.CreatedAt.IsZero())
	assert.Equal(t, NewPlayerState().Snapshot(), sess.Snapshot())

	got, ok := s.GetSession(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = s.GetSession("nonexistent")
	assert.False(t, ok)

	other := s.CreateSession()
	assert.NotEqual(t, sess.ID, other.ID)
	assert.Equal(t, 2, s.Len())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := NewStore(ProgressionRules{})
	a := s.CreateSession()
	b := s.CreateSession()

	_, err := a.Apply(Command{Kind: CmdAddItem, Name: "Map"})
	require.NoError(t, err)
	assert.Equal(t, 3, a.Snapshot().TotalItems)
	assert.Equal(t, 2, b.Snapshot().TotalItems)
}

func TestStore_EndSession(t *testing.T) {
	s := NewStore(ProgressionRules{})
	sess := s.CreateSession()
	assert.True(t, s.EndSession(sess.ID))
	assert.False(t, s.EndSession(sess.ID))
	_, ok := s.GetSession(sess.ID)
	assert.False(t, ok)
}

func TestStore_SessionPublishesStateChanges(t *testing.T) {
	s := NewStore(ProgressionRules{})
	sess := s.CreateSession()
	hub, ok := s.Broadcaster(sess.ID)
	require.True(t, ok)
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	update, err := sess.Apply(Command{Kind: CmdTakeDamage})
	require.NoError(t, err)
	got := <-ch
	assert.Equal(t, update, got)
	assert.Equal(t, 85, got.Snapshot.Health.Current)

	_, err = sess.Apply(Command{Kind: CmdShowStats})
	require.NoError(t, err)
	_, err = sess.Apply(Command{Kind: CmdUseMana})
	require.NoError(t, err)
	_, err = sess.Apply(Command{Kind: CmdAddItem})
	require.ErrorIs(t, err, ErrInvalidInput)

	got = <-ch
	assert.Equal(t, CmdUseMana, got.Command, "reads and failed commands are not published")
	select {
	case extra := <-ch:
		t.Fatalf("unexpected update %+v", extra)
	default:
	}
}

// Updates reach subscribers in the order the session applied them, so the
// last one delivered always matches the session's current state.
func TestStore_ConcurrentUpdatesArriveInOrder(t *testing.T) {
	s := NewStore(ProgressionRules{})
	sess := s.CreateSession()
	hub, _ := s.Broadcaster(sess.ID)
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	// Stay within the subscriber buffer so nothing is dropped.
	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sess.Apply(Command{Kind: CmdAddGold, Amount: intPtr(5)})
		}()
	}
	wg.Wait()

	var last Update
	prev := DefaultGold
	for i := 0; i < writers; i++ {
		last = <-ch
		assert.Greater(t, last.Snapshot.Gold, prev)
		prev = last.Snapshot.Gold
	}
	assert.Equal(t, sess.Snapshot(), last.Snapshot)
	assert.Equal(t, DefaultGold+writers*5, last.Snapshot.Gold)
}

func TestStore_EndSessionClosesSubscriptions(t *testing.T) {
	s := NewStore(ProgressionRules{})
	sess := s.CreateSession()
	hub, _ := s.Broadcaster(sess.ID)
	ch := hub.Subscribe()

	require.True(t, s.EndSession(sess.ID))
	_, open := <-ch
	assert.False(t, open)
}

func TestStore_UsesConfiguredRules(t *testing.T) {
	s := NewStore(ProgressionRules{ChainLevelUps: true})
	sess := s.CreateSession()
	update, err := sess.Apply(Command{Kind: CmdAddExperience, Amount: intPtr(300)})
	require.NoError(t, err)
	assert.Equal(t, 3, update.Snapshot.Level)
}

func TestSession_FailedCommandSkipsRules(t *testing.T) {
	sess := NewSession(ProgressionRules{})
	_, err := sess.Apply(Command{Kind: CmdAddItem, Name: " "})
	require.ErrorIs(t, err, ErrInvalidInput)

	update, err := sess.Apply(Command{Kind: CmdUseMana})
	require.NoError(t, err)
	update, err = sess.Apply(Command{Kind: CmdUseMana})
	require.NoError(t, err)
	require.Equal(t, 10, update.Snapshot.Mana.Current)

	update, err = sess.Apply(Command{Kind: CmdUseMana})
	require.ErrorIs(t, err, ErrInsufficientResource)
	assert.NotEmpty(t, update.Error)
	assert.Empty(t, update.Events)
	assert.Equal(t, 10, update.Snapshot.Mana.Current)
}

func TestSession_ShowStatsIsReadOnly(t *testing.T) {
	sess := NewSession(ProgressionRules{})
	update, err := sess.Apply(Command{Kind: CmdShowStats})
	require.NoError(t, err)
	assert.Equal(t, StatusAlive, update.Snapshot.Status, "no rules pass ran")
	assert.Equal(t, NewPlayerState().Snapshot(), update.Snapshot)
}

func TestSession_ResetReturnsDefaults(t *testing.T) {
	sess := NewSession(ProgressionRules{})
	for i := 0; i < 5; i++ {
		_, err := sess.Apply(Command{Kind: CmdTakeDamage})
		require.NoError(t, err)
	}
	_, err := sess.Apply(Command{Kind: CmdAddScore, Amount: intPtr(600)})
	require.NoError(t, err)

	update, err := sess.Apply(Command{Kind: CmdReset})
	require.NoError(t, err)
	assert.Empty(t, update.Events)
	assert.Equal(t, NewPlayerState().Snapshot(), update.Snapshot)
}

func TestSession_RejectsOverflowingAmounts(t *testing.T) {
	sess := NewSession(ProgressionRules{})
	for _, kind := range []CommandKind{CmdAddScore, CmdAddExperience, CmdAddGold} {
		for i := 0; i < 2; i++ {
			update, err := sess.Apply(Command{Kind: kind, Amount: intPtr(math.MaxInt)})
			require.ErrorIs(t, err, ErrInvalidInput, kind)
			assert.Empty(t, update.Events)
		}
	}
	assert.Equal(t, NewPlayerState().Snapshot(), sess.Snapshot())
}

func TestSession_ConcurrentActionsAreSerialized(t *testing.T) {
	sess := NewSession(ProgressionRules{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sess.Apply(Command{Kind: CmdAddGold, Amount: intPtr(2)})
		}()
	}
	wg.Wait()
	assert.Equal(t, 200, sess.Snapshot().Gold)
}
