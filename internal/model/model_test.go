package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Color_KnownLabels(t *testing.T) {
	assert.Equal(t, "green", StatusOpen.Color())
	assert.Equal(t, "red", StatusClosed.Color())
	assert.Equal(t, "orange", StatusFire.Color())
	assert.Equal(t, "brown", StatusCoffee.Color())
}

func TestStatus_Color_UnknownLabel(t *testing.T) {
	assert.Equal(t, DefaultColor, Status("hackathon").Color())
	assert.Equal(t, "purple", StatusError.Color())
}

func TestStatus_IsKnown(t *testing.T) {
	for _, s := range Known() {
		assert.True(t, s.IsKnown(), s)
	}
	assert.False(t, Status("party").IsKnown())
	assert.False(t, StatusError.IsKnown())
}

func TestValidateStatus_Empty(t *testing.T) {
	assert.Error(t, ValidateStatus(""))
	assert.Error(t, ValidateStatus("   "))
	assert.NoError(t, ValidateStatus("open"))
}

func TestNewRequest_DefaultsColor(t *testing.T) {
	for _, s := range Known() {
		req, err := NewRequest(s, "")
		require.NoError(t, err)
		assert.Equal(t, string(s), req.Label)
		assert.Equal(t, s.Color(), req.Color)
	}

	req, err := NewRequest("hackathon", "")
	require.NoError(t, err)
	assert.Equal(t, "purple", req.Color)
}

func TestNewRequest_ExplicitColor(t *testing.T) {
	req, err := NewRequest(StatusOpen, "#00ff00")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", req.Color)
}

func TestNewRequest_EmptyLabel(t *testing.T) {
	_, err := NewRequest("", "red")
	assert.Error(t, err)
}

func TestAnnouncement(t *testing.T) {
	assert.Contains(t, Announcement(StatusOpen), "open")
	assert.Contains(t, Announcement(StatusFire), "fire")
	assert.Equal(t, "Lab is hackathon", Announcement("hackathon"))
}

func TestKnown_ReturnsCopy(t *testing.T) {
	k := Known()
	k[0] = "mutated"
	assert.Equal(t, StatusOpen, Known()[0])
}
