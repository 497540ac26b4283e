package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSize(t *testing.T) {
	assert.Equal(t, 1, selectSize(1))
	assert.Equal(t, 8, selectSize(8))
	assert.Equal(t, maxSelectRows, selectSize(maxSelectRows))
	assert.Equal(t, maxSelectRows, selectSize(250))
}
