package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusWatched))
	assert.True(t, ValidStatus(StatusWatchlist))
	assert.True(t, ValidStatus(StatusFavorite))

	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Watched"))
	assert.False(t, ValidStatus("binged"))
}
