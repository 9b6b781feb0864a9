package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAction(t *testing.T) {
	assert.Equal(t, ActionInsert, NormalizeAction("create"))
	assert.Equal(t, ActionInsert, NormalizeAction(" INSERT "))
	assert.Equal(t, ActionUpdate, NormalizeAction("edit"))
	assert.Equal(t, ActionDelete, NormalizeAction("Deleted"))
	assert.Equal(t, "", NormalizeAction("truncate"))
}
