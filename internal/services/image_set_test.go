package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-service/internal/services"
)

func TestImageSetMerge_PreservesOrder(t *testing.T) {
	retained := services.ImageSet{"a", "b", "c"}

	merged, err := retained.Merge([]string{"d", "e"})
	require.NoError(t, err)
	assert.Equal(t, services.ImageSet{"a", "b", "c", "d", "e"}, merged)
}

func TestImageSetMerge_EmptySides(t *testing.T) {
	merged, err := services.ImageSet{}.Merge([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, services.ImageSet{"a"}, merged)

	merged, err = services.ImageSet{"a"}.Merge(nil)
	require.NoError(t, err)
	assert.Equal(t, services.ImageSet{"a"}, merged)
}

func TestImageSetMerge_LimitExceeded(t *testing.T) {
	retained := services.ImageSet{"a", "b", "c"}

	merged, err := retained.Merge([]string{"d", "e", "f"})
	assert.Nil(t, merged)

	var limitErr *services.LimitExceededError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, services.MaxProjectImages, limitErr.Limit)
	assert.Equal(t, 6, limitErr.Requested)
}

func TestImageSetCanAccept(t *testing.T) {
	assert.NoError(t, services.ImageSet{}.CanAccept(5))
	assert.NoError(t, services.ImageSet{"a", "b"}.CanAccept(3))
	assert.Error(t, services.ImageSet{"a", "b"}.CanAccept(4))
	assert.Error(t, services.ImageSet{}.CanAccept(6))
}

func TestImageSetRemove(t *testing.T) {
	set := services.ImageSet{"a", "b", "c"}

	removed := set.Remove("b")
	assert.Equal(t, services.ImageSet{"a", "c"}, removed)

	// Removing an absent URL is a no-op.
	assert.Equal(t, services.ImageSet{"a", "c"}, removed.Remove("zzz"))

	// A removed URL is never reintroduced by a later merge.
	merged, err := removed.Merge([]string{"d"})
	require.NoError(t, err)
	assert.NotContains(t, merged, "b")
	assert.Equal(t, services.ImageSet{"a", "c", "d"}, merged)
}

func TestImageSetRemove_FirstMatchOnly(t *testing.T) {
	set := services.ImageSet{"a", "b", "a"}
	assert.Equal(t, services.ImageSet{"b", "a"}, set.Remove("a"))
}
