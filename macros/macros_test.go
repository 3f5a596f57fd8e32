package macros

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGetters(t *testing.T) {
	src, err := GenerateGetters("model", "user", []field{{"name", "string"}, {"age", "int"}})
	require.NoError(t, err)
	assert.Contains(t, src, "package model")
	assert.Contains(t, src, "func (x *user) Name() string { return x.name }")
	assert.Contains(t, src, "func (x *user) Age() int { return x.age }")
}

func TestGenerateGettersRejectsBadType(t *testing.T) {
	_, err := GenerateGetters("model", "user", []field{{"x", "map[string"}})
	assert.ErrorContains(t, err, "format getters")
}

func TestGenerateStringer(t *testing.T) {
	src, err := GenerateStringer("paint", "Color", []string{"Red", "Blue"})
	require.NoError(t, err)
	assert.Contains(t, src, "// Code generated by enumgen. DO NOT EDIT.")
	assert.Contains(t, src, "case Red:\n\t\treturn \"Red\"")
	assert.Contains(t, src, `return "Color(?)"`)
}

func TestDescribe(t *testing.T) {
	s := Server{Host: "h", Port: 1, Password: "p", TLS: false}
	assert.Equal(t, "Server{主机=h, 端口=1, TLS=false}", Describe(s))
	assert.Equal(t, Describe(s), Describe(&s))
	assert.Equal(t, "7", Describe(7))
}

func TestVariadicHelpers(t *testing.T) {
	assert.Equal(t, 9, maxOf(3, 9, 4))
	m, err := hashMap("a", "1", "b", "2")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, m)
	_, err = hashMap("a")
	assert.Error(t, err)
}
