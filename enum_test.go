package xconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type Level uint8

const (
	Low Level = iota
	Medium
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	}
	return "Unknown"
}

func TestEnum_RoundTrip(t *testing.T) {
	for _, member := range FruitKind.Members() {
		name, ok := FruitKind.Format(member.Value)
		assert.True(t, ok, member.Name)
		byName, err := To(FruitKind, name)
		assert.Nil(t, err, member.Name)
		assert.Equal(t, member.Value, byName)

		byValue, err := To(FruitKind, FruitKind.FormatValue(member.Value))
		assert.Nil(t, err, member.Name)
		assert.Equal(t, member.Value, byValue)
	}
}

func TestEnumOf(t *testing.T) {
	kind := EnumOf(Low, Medium, High)
	assert.Equal(t, "xconv.Level", kind.Name())
	var testCases = []struct {
		description string
		input       string
		expect      Level
		expectErr   bool
	}{
		{description: "name", input: "Medium", expect: Medium},
		{description: "zero member value", input: "0", expect: Low},
		{description: "value", input: "2", expect: High},
		{description: "negative zero", input: "-0", expect: Low},
		{description: "negative value", input: "-1", expectErr: true},
		{description: "undeclared value", input: "3", expectErr: true},
		{description: "wider than byte", input: "258", expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := To(kind, testCase.input)
		if testCase.expectErr {
			assert.True(t, IsKind(err, KindInvalidEnumValue), testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
	assert.Equal(t, "2", kind.FormatValue(High))
}

func TestNewEnum_FirstDeclarationWins(t *testing.T) {
	kind := NewEnum(Member("One", int8(1)), Member("Uno", int8(1)), Member("One", int8(2)), Member("Minus", int8(-1)))
	name, ok := kind.Format(1)
	assert.True(t, ok)
	assert.Equal(t, "One", name)
	assert.False(t, kind.IsDefined(2))
	assert.Len(t, kind.Members(), 3)

	value, err := To(kind, "Uno")
	assert.Nil(t, err)
	assert.Equal(t, int8(1), value)
	value, err = To(kind, "-1")
	assert.Nil(t, err)
	assert.Equal(t, int8(-1), value)
	assert.Equal(t, "-1", kind.FormatValue(-1))
	_, ok = kind.Format(5)
	assert.False(t, ok)
}

func TestEnum_Nil(t *testing.T) {
	var kind *Enum[Fruit]
	_, err := To[Fruit](kind, "Apple")
	assert.True(t, IsKind(err, KindUnsupportedType))
	assert.False(t, kind.IsDefined(Apple))
}
