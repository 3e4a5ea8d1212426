package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemKindField(t *testing.T) {
	assert.Equal(t, "games", KindGame.Field())
	assert.Equal(t, "movies", KindMovie.Field())
	assert.Equal(t, "books", KindBook.Field())
	assert.Empty(t, ItemKind("songs").Field())
}

func TestItemKindItems(t *testing.T) {
	l := &Locker{
		Games:  []string{"g1"},
		Movies: []string{"m1", "m2"},
		Books:  []string{},
	}

	assert.Equal(t, []string{"g1"}, KindGame.Items(l))
	assert.Equal(t, []string{"m1", "m2"}, KindMovie.Items(l))
	assert.Empty(t, KindBook.Items(l))
	assert.Nil(t, ItemKind("songs").Items(l))
}
