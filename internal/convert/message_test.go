package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	t.Parallel()

	batch := []RenamePair{{Name: "Foo"}, {Name: "Bar"}}

	assert.Equal(t, "convert Foo, Bar to kotlin", Message("", batch))
	assert.Equal(t, "convert Foo to kotlin", Message(DefaultMessageTemplate, batch[:1]))
	assert.Equal(t, "j2k: Foo, Bar", Message("j2k: {names}", batch))
}
