package blogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactFirstLike(t *testing.T) {
	u := React(nil, nil, "u1", true)
	assert.Equal(t, ReactionUpdate{AddLike: true}, u)
}

func TestReactLikeTwiceWithdraws(t *testing.T) {
	u := React([]string{"u1"}, nil, "u1", true)
	assert.Equal(t, ReactionUpdate{RemoveLike: true}, u)
}

func TestReactLikeClearsStandingDislike(t *testing.T) {
	u := React(nil, []string{"u1"}, "u1", true)
	assert.Equal(t, ReactionUpdate{AddLike: true, RemoveDislike: true}, u)
}

func TestReactDislikeClearsStandingLike(t *testing.T) {
	u := React([]string{"u1"}, nil, "u1", false)
	assert.Equal(t, ReactionUpdate{AddDislike: true, RemoveLike: true}, u)
}

func TestReactDislikeTwiceWithdraws(t *testing.T) {
	u := React(nil, []string{"u1"}, "u1", false)
	assert.Equal(t, ReactionUpdate{RemoveDislike: true}, u)
}

func TestReactIndependentUsers(t *testing.T) {
	// u2's state is untouched by u1's reaction sets
	u := React([]string{"u2"}, []string{"u3"}, "u1", true)
	assert.Equal(t, ReactionUpdate{AddLike: true}, u)
}
