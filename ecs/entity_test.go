package ecs_test

import (
	"fmt"
	"testing"

	"github.com/plus3/scavenger/ecs"
	"github.com/stretchr/testify/assert"
)

func TestEntityEncoding(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("generation=%d,index=%d", tt.generation, tt.index), func(t *testing.T) {
			e := ecs.NewEntity(tt.generation, tt.index)
			assert.Equal(t, tt.generation, e.Generation())
			assert.Equal(t, tt.index, e.Index())
		})
	}
}

func TestEntities(t *testing.T) {
	t.Run("create never returns zero", func(t *testing.T) {
		es := ecs.NewEntities()
		for i := 0; i < 100; i++ {
			assert.NotEqual(t, ecs.Entity(0), es.Create())
		}
		assert.Equal(t, 100, es.Len())
	})

	t.Run("destroyed ids stay dead after slot reuse", func(t *testing.T) {
		es := ecs.NewEntities()
		first := es.Create()
		assert.True(t, es.Destroy(first))
		assert.False(t, es.Alive(first))

		second := es.Create()
		assert.Equal(t, first.Index(), second.Index())
		assert.NotEqual(t, first, second)
		assert.True(t, es.Alive(second))
		assert.False(t, es.Alive(first))
	})

	t.Run("double destroy is rejected", func(t *testing.T) {
		es := ecs.NewEntities()
		e := es.Create()
		assert.True(t, es.Destroy(e))
		assert.False(t, es.Destroy(e))
		assert.Equal(t, 0, es.Len())
	})

	t.Run("unknown ids are not alive", func(t *testing.T) {
		es := ecs.NewEntities()
		assert.False(t, es.Alive(0))
		assert.False(t, es.Alive(ecs.NewEntity(1, 42)))
	})

	t.Run("reset kills everything", func(t *testing.T) {
		es := ecs.NewEntities()
		a := es.Create()
		b := es.Create()
		es.Reset()

		assert.Equal(t, 0, es.Len())
		assert.False(t, es.Alive(a))
		assert.False(t, es.Alive(b))

		c := es.Create()
		assert.Equal(t, a.Index(), c.Index())
		assert.True(t, es.Alive(c))
	})

	t.Run("iter yields live entities only", func(t *testing.T) {
		es := ecs.NewEntities()
		a := es.Create()
		b := es.Create()
		c := es.Create()
		es.Destroy(b)

		var got []ecs.Entity
		for e := range es.Iter() {
			got = append(got, e)
		}
		assert.Equal(t, []ecs.Entity{a, c}, got)
	})
}
