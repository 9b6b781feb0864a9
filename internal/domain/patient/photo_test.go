package patient

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhotoKey(t *testing.T) {
	now := time.Date(2024, 7, 1, 23, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	a := PhotoKey(12, now)
	b := PhotoKey(12, now)

	assert.True(t, strings.HasPrefix(a, "patients/12/20240702-"))
	assert.True(t, strings.HasSuffix(a, ".webp"))
	assert.NotEqual(t, a, b)
}
