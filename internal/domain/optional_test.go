package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_ThreeStates(t *testing.T) {
	type payload struct {
		Name       Optional[string] `json:"name"`
		CategoryID Optional[string] `json:"categoryId"`
		Price      Optional[int]    `json:"price"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Mouse","categoryId":null}`), &p))

	v, ok := p.Name.Get()
	assert.True(t, p.Name.IsSet())
	assert.True(t, ok)
	assert.Equal(t, "Mouse", v)

	assert.True(t, p.CategoryID.IsSet(), "explicit null is still set")
	assert.True(t, p.CategoryID.IsNull())
	_, ok = p.CategoryID.Get()
	assert.False(t, ok)

	assert.False(t, p.Price.IsSet(), "absent key stays unset")
	assert.False(t, p.Price.IsNull())
}

func TestOptional_Constructors(t *testing.T) {
	s := Some(42)
	v, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	n := Null[int]()
	assert.True(t, n.IsSet())
	assert.True(t, n.IsNull())
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var target struct {
		Price Optional[int] `json:"price"`
	}
	err := json.Unmarshal([]byte(`{"price":"abc"}`), &target)
	assert.Error(t, err)
}

func TestOptional_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Some("x"))
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(b))

	b, err = json.Marshal(Null[string]())
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}
