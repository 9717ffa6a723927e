package logutils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, `"hello"`, Format("%q", "hello").String())
	assert.Equal(t, "map[a:1]", fmt.Sprint(Format("%v", map[string]int{"a": 1})))
}
