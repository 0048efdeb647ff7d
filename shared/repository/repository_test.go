package repository

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type embedded struct {
	CreatedAt string `db:"created_at"`
}

type row struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Ignored string `db:"-"`
	Plain   string
	embedded
}

func TestGetColumns(t *testing.T) {
	tests := []struct {
		name     string
		typ      reflect.Type
		expected []string
	}{
		{name: "struct", typ: reflect.TypeOf(row{}), expected: []string{"id", "name", "created_at"}},
		{name: "pointer", typ: reflect.TypeOf(&row{}), expected: []string{"id", "name", "created_at"}},
		{name: "not a struct", typ: reflect.TypeOf(1), expected: nil},
		{name: "nil", typ: nil, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getColumns(tt.typ))
		})
	}
}
