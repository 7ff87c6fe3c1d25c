package occupancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

func TestResolve_Choice(t *testing.T) {
	res := Resolve(domain.RoomTypes{doubleRoom(), singleRoom()}, 2, 1)

	assert.Equal(t, OutcomeChoice, res.Outcome)
	assert.Empty(t, res.Forced)
	assert.Equal(t, []string{"double", "single"}, res.Eligible)
	assert.Empty(t, res.Rejections)
	assert.NoError(t, res.Err())
}

func TestResolve_Forced(t *testing.T) {
	res := Resolve(domain.RoomTypes{doubleRoom(), singleRoom()}, 3, 0)

	assert.Equal(t, OutcomeForced, res.Outcome)
	assert.Equal(t, "double", res.Forced)
	assert.True(t, res.IsEligible("double"))
	assert.False(t, res.IsEligible("single"))
	require.Len(t, res.Rejections, 1)
	assert.Equal(t, "single", res.Rejections[0].Slug)
	assert.Equal(t, KindAdultOverflowNotAllowed, res.Rejections[0].Kind)
}

func TestResolve_Rejected(t *testing.T) {
	res := Resolve(domain.RoomTypes{doubleRoom(), singleRoom()}, 2, 3)

	assert.Equal(t, OutcomeRejected, res.Outcome)
	assert.Empty(t, res.Eligible)
	assert.Len(t, res.Rejections, 2)

	rejection, ok := res.PrimaryRejection()
	require.True(t, ok)
	assert.NotEqual(t, KindNone, rejection.Kind)
	assert.Error(t, res.Err())
}

func TestResolve_NoAdult(t *testing.T) {
	res := Resolve(domain.RoomTypes{doubleRoom(), singleRoom()}, 0, 1)

	assert.Equal(t, OutcomeRejected, res.Outcome)
	assert.ErrorIs(t, res.Err(), ErrNoAdult)
}

func TestResolve_EmptyRegistry(t *testing.T) {
	res := Resolve(domain.RoomTypes{}, 2, 0)

	assert.Equal(t, OutcomeRejected, res.Outcome)
	assert.ErrorIs(t, res.Err(), ErrInvalidRoomType)
}

func TestResolution_PrimaryRejectionWhenEligible(t *testing.T) {
	res := Resolve(domain.RoomTypes{singleRoom()}, 1, 0)

	_, ok := res.PrimaryRejection()
	assert.False(t, ok)
	assert.Equal(t, "single", res.Forced)
}
