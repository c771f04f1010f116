package items

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("lost")
	require.NoError(t, err)
	assert.Equal(t, KindLost, k)

	k, err = ParseKind("found")
	require.NoError(t, err)
	assert.Equal(t, KindFound, k)

	for _, bad := range []string{"", "Lost", "stolen"} {
		_, err := ParseKind(bad)
		assert.Error(t, err, "kind %q should be rejected", bad)
	}
}

func TestKind_Opposite(t *testing.T) {
	assert.Equal(t, KindFound, KindLost.Opposite())
	assert.Equal(t, KindLost, KindFound.Opposite())
}

func TestKind_Statuses(t *testing.T) {
	assert.Equal(t, StatusActive, KindLost.OpenStatus())
	assert.Equal(t, StatusAvailable, KindFound.OpenStatus())

	assert.True(t, KindLost.ValidStatus("closed"))
	assert.False(t, KindLost.ValidStatus("claimed"))
	assert.True(t, KindFound.ValidStatus("returned"))
	assert.False(t, KindFound.ValidStatus("active"))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"red", "leather"}, NormalizeTags([]string{" red", "", "leather ", "red"}))
	assert.Empty(t, NormalizeTags(nil))
}

func TestBuildListQuery(t *testing.T) {
	query, args := buildListQuery(KindFound, ListFilter{})
	assert.Contains(t, query, "LIMIT $3")
	assert.Equal(t, []any{KindFound, StatusAvailable, defaultListLimit}, args)

	query, args = buildListQuery(KindLost, ListFilter{
		CategoryID: "c1",
		Search:     "50%_off",
		Limit:      1000,
	})

	assert.Contains(t, query, "i.category_id = $3")
	assert.Contains(t, query, "i.title ILIKE $4 OR i.description ILIKE $4")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(query), "LIMIT $5"))
	assert.Equal(t, []any{KindLost, StatusActive, "c1", `%50\%\_off%`, maxListLimit}, args)
}

func TestItemPoint(t *testing.T) {
	lat, lon := 1.5, 2.5

	assert.Nil(t, (&Item{Latitude: &lat}).Point())

	p := (&Item{Latitude: &lat, Longitude: &lon}).Point()
	require.NotNil(t, p)
	assert.Equal(t, 1.5, p.Lat)
	assert.Equal(t, 2.5, p.Lon)
}
