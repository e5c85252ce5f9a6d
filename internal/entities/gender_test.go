package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dabingnn/QSanguosha/internal/entities"
)

func TestParseGender(t *testing.T) {
	for _, gender := range []entities.Gender{entities.Male, entities.Female, entities.Neuter} {
		parsed, ok := entities.ParseGender(gender.String())
		assert.True(t, ok)
		assert.Equal(t, gender, parsed)
	}

	_, ok := entities.ParseGender("robot")
	assert.False(t, ok)
}
