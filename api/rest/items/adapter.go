package items

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"codeberg.org/reclaim/server/internal/validation"
	"codeberg.org/reclaim/server/reclaim/items"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// accepted layouts for occurred_at in form posts
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// normalizes a JSON or form encoded post into one validated request
func bindCreateRequest(c *gin.Context, kind items.Kind) (items.CreateItemRequest, error) {
	var req items.CreateItemRequest

	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		parsed, err := requestFromForm(c, kind)
		if err != nil {
			return req, err
		}

		req = parsed

		if err := binding.Validator.ValidateStruct(&req); err != nil {
			return req, err
		}
	default:
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}

	if err := validation.CoordinatePair(req.Latitude, req.Longitude); err != nil {
		return req, err
	}

	return req, nil
}

func requestFromForm(c *gin.Context, kind items.Kind) (items.CreateItemRequest, error) {
	req := items.CreateItemRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		CategoryID:  c.PostForm("category_id"),
		Location:    firstNonEmpty(c.PostForm("location"), c.PostForm("location_"+string(kind))),
		ContactInfo: c.PostForm("contact_info"),
		Images:      c.PostFormArray("images"),
		Tags:        splitTags(c.PostFormArray("tags")),
	}

	var err error

	if req.Latitude, err = formFloat(c, "latitude"); err != nil {
		return req, err
	}

	if req.Longitude, err = formFloat(c, "longitude"); err != nil {
		return req, err
	}

	reward, err := formFloat(c, "reward_amount")
	if err != nil {
		return req, err
	}

	if reward != nil {
		req.RewardAmount = *reward
	}

	if field, raw := dateField(c, kind); raw != "" {
		at, err := parseDate(field, raw)
		if err != nil {
			return req, err
		}

		req.OccurredAt = &at
	}

	return req, nil
}

func formFloat(c *gin.Context, field string) (*float64, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: not a number", field, raw)
	}

	return &v, nil
}

// occurred_at wins over the legacy date_<kind> field
func dateField(c *gin.Context, kind items.Kind) (string, string) {
	if raw := strings.TrimSpace(c.PostForm("occurred_at")); raw != "" {
		return "occurred_at", raw
	}

	field := "date_" + string(kind)

	return field, strings.TrimSpace(c.PostForm(field))
}

func parseDate(field, raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid %s %q: expected an ISO 8601 date", field, raw)
}

// form posts send tags either repeated or as one comma separated value
func splitTags(values []string) []string {
	var tags []string

	for _, v := range values {
		tags = append(tags, strings.Split(v, ",")...)
	}

	return items.NormalizeTags(tags)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
