package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epos-support-agent/internal/models"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	var payload struct {
		ID models.FlexString `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id":"42"}`), &payload))
	assert.Equal(t, "42", payload.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id":482913}`), &payload))
	assert.Equal(t, "482913", payload.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &payload))
	assert.Equal(t, "", payload.ID.String())

	assert.Error(t, json.Unmarshal([]byte(`{"id":["nope"]}`), &payload))
}

func TestTicketStatus_Valid(t *testing.T) {
	assert.True(t, models.StatusUnderReview.Valid())
	assert.True(t, models.StatusResolved.Valid())
	assert.True(t, models.StatusNotDoing.Valid())
	assert.False(t, models.TicketStatus("Escalated").Valid())
	assert.False(t, models.TicketStatus("").Valid())
}
