package items

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codeberg.org/reclaim/server/reclaim/items"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c
}

func TestDateField(t *testing.T) {
	tests := []struct {
		name  string
		kind  items.Kind
		body  string
		field string
		raw   string
	}{
		{"occurred_at preferred", items.KindLost, "occurred_at=2024-05-01&date_lost=2024-01-01", "occurred_at", "2024-05-01"},
		{"lost fallback", items.KindLost, "date_lost=2024-01-01", "date_lost", "2024-01-01"},
		{"found fallback", items.KindFound, "date_found=+2024-02-02+", "date_found", "2024-02-02"},
		{"none", items.KindFound, "title=x", "date_found", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, raw := dateField(formContext(t, tt.body), tt.kind)
			assert.Equal(t, tt.field, field)
			assert.Equal(t, tt.raw, raw)
		})
	}
}

func TestRequestFromForm_BadDateNamesField(t *testing.T) {
	c := formContext(t, "title=t&description=d&date_found=last+tuesday")

	_, err := requestFromForm(c, items.KindFound)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date_found")
	assert.NotContains(t, err.Error(), "occurred_at")

	c = formContext(t, "title=t&description=d&occurred_at=soon")

	_, err = requestFromForm(c, items.KindLost)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid occurred_at")
}

func TestParseDate(t *testing.T) {
	at, err := parseDate("occurred_at", "2024-05-01T10:30:00Z")
	require.NoError(t, err)
	assert.True(t, at.Equal(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)))

	_, err = parseDate("date_lost", "01/05/2024")
	assert.EqualError(t, err, `invalid date_lost "01/05/2024": expected an ISO 8601 date`)
}
