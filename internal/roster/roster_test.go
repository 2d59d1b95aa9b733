package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/futmanager/internal/models"
)

func fixture() []models.Player {
	return []models.Player{
		{ID: "m1", Name: "Rafael", Type: models.PlayerTypeMember, Stars: 4, IsActive: true},
		{ID: "m2", Name: "bruno", Type: models.PlayerTypeMember, Stars: 3, IsActive: true},
		{ID: "m3", Name: "Carlos", Type: models.PlayerTypeMember, Stars: 2, IsActive: false},
		{ID: "g1", Name: "Diego", Type: models.PlayerTypeGuest, Stars: 3, IsActive: true, SponsorID: "m1"},
	}
}

func TestUpsert(t *testing.T) {
	players := fixture()

	replaced := Upsert(players, models.Player{ID: "m2", Name: "Bruno Silva", Type: models.PlayerTypeMember, Stars: 5})
	require.Len(t, replaced, 4)
	assert.Equal(t, "Bruno Silva", replaced[1].Name)
	assert.Equal(t, "bruno", players[1].Name, "input must not be modified")

	appended := Upsert(players, models.Player{ID: "new", Name: "Eva"})
	require.Len(t, appended, 5)
	assert.Equal(t, "new", appended[4].ID)
}

func TestRemove_DoesNotCascade(t *testing.T) {
	players, err := Remove(fixture(), "m1")
	require.NoError(t, err)
	require.Len(t, players, 3)

	guest, ok := Find(players, "g1")
	require.True(t, ok)
	assert.Equal(t, "m1", guest.SponsorID)
	assert.Equal(t, models.UnlinkedSponsor, SponsorName(players, guest))

	_, err = Remove(players, "m1")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestToggleActive(t *testing.T) {
	players, err := ToggleActive(fixture(), "m3")
	require.NoError(t, err)
	p, _ := Find(players, "m3")
	assert.True(t, p.IsActive)

	players, err = ToggleActive(players, "m3")
	require.NoError(t, err)
	p, _ = Find(players, "m3")
	assert.False(t, p.IsActive)
}

func TestPromote_ClearsSponsor(t *testing.T) {
	players, err := Promote(fixture(), "g1")
	require.NoError(t, err)
	p, _ := Find(players, "g1")
	assert.Equal(t, models.PlayerTypeMember, p.Type)
	assert.Empty(t, p.SponsorID)
}

func TestDemote(t *testing.T) {
	t.Run("explicit sponsor", func(t *testing.T) {
		players, err := Demote(fixture(), "m1", "m2")
		require.NoError(t, err)
		p, _ := Find(players, "m1")
		assert.Equal(t, models.PlayerTypeGuest, p.Type)
		assert.Equal(t, "m2", p.SponsorID)

		// the demoted member's own guest keeps its sponsor
		g, _ := Find(players, "g1")
		assert.Equal(t, "m1", g.SponsorID)
	})

	t.Run("first other active member by name", func(t *testing.T) {
		players, err := Demote(fixture(), "m1", "")
		require.NoError(t, err)
		p, _ := Find(players, "m1")
		assert.Equal(t, "m2", p.SponsorID)
	})

	t.Run("inactive sponsor rejected", func(t *testing.T) {
		_, err := Demote(fixture(), "m1", "m3")
		assert.ErrorIs(t, err, ErrInvalidPlayer)
	})

	t.Run("self sponsor rejected", func(t *testing.T) {
		_, err := Demote(fixture(), "m1", "m1")
		assert.ErrorIs(t, err, ErrInvalidPlayer)
	})

	t.Run("no other active member", func(t *testing.T) {
		players := []models.Player{
			{ID: "solo", Name: "Solo", Type: models.PlayerTypeMember, Stars: 3, IsActive: true},
		}
		_, err := Demote(players, "solo", "")
		assert.ErrorIs(t, err, ErrNoSponsor)
	})

	t.Run("unknown player", func(t *testing.T) {
		_, err := Demote(fixture(), "nope", "m2")
		assert.ErrorIs(t, err, ErrPlayerNotFound)
	})
}

func TestSetRating(t *testing.T) {
	for _, stars := range []int{0, 6, -1} {
		_, err := SetRating(fixture(), "m1", stars)
		assert.ErrorIs(t, err, ErrInvalidRating, "stars=%d", stars)
	}

	players, err := SetRating(fixture(), "m1", 5)
	require.NoError(t, err)
	p, _ := Find(players, "m1")
	assert.Equal(t, 5, p.Stars)

	_, err = SetRating(fixture(), "nope", 3)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestValidate(t *testing.T) {
	ok := models.Player{ID: "x", Name: "Eva", Type: models.PlayerTypeGuest, Stars: 3}
	assert.NoError(t, Validate(ok))

	blank := ok
	blank.Name = "   "
	assert.ErrorIs(t, Validate(blank), ErrInvalidPlayer)

	badType := ok
	badType.Type = "GOLEIRO"
	assert.ErrorIs(t, Validate(badType), ErrInvalidPlayer)

	badStars := ok
	badStars.Stars = 9
	assert.ErrorIs(t, Validate(badStars), ErrInvalidRating)
}

func TestCheckGuestSponsor(t *testing.T) {
	players := fixture()
	assert.NoError(t, CheckGuestSponsor(players, models.Player{ID: "x", Type: models.PlayerTypeGuest, SponsorID: "m2"}))
	assert.NoError(t, CheckGuestSponsor(players, models.Player{ID: "x", Type: models.PlayerTypeGuest}))
	assert.ErrorIs(t, CheckGuestSponsor(players, models.Player{ID: "x", Type: models.PlayerTypeGuest, SponsorID: "m3"}), ErrInvalidPlayer)
	assert.ErrorIs(t, CheckGuestSponsor(players, models.Player{ID: "x", Type: models.PlayerTypeGuest, SponsorID: "gone"}), ErrInvalidPlayer)
}

func TestActiveMembers_SortedByName(t *testing.T) {
	members := ActiveMembers(fixture())
	require.Len(t, members, 2)
	assert.Equal(t, "bruno", members[0].Name)
	assert.Equal(t, "Rafael", members[1].Name)
}

func TestSponsorName(t *testing.T) {
	players := fixture()
	guest, _ := Find(players, "g1")
	assert.Equal(t, "Rafael", SponsorName(players, guest))
	assert.Equal(t, "", SponsorName(players, models.Player{ID: "x"}))
}
