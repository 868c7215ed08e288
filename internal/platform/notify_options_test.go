package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutDefault(t *testing.T) {
	assert.Equal(t, int32(5000), Options{}.timeout())
	assert.Equal(t, int32(1500), Options{TimeoutMS: 1500}.timeout())
}
