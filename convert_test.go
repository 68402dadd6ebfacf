package xconv

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ftime "github.com/viant/xconv/format/time"
)

type Fruit int

const (
	Apple Fruit = iota + 1
	Banana
	Kiwi
)

var FruitKind = NewEnum(
	Member("Apple", Apple),
	Member("Banana", Banana),
	Member("Kiwi", Kiwi),
)

func stringPtr(s string) *string {
	return &s
}

func TestTo_Enum(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      Fruit
		expectErr   bool
	}{
		{description: "declared name", input: "Apple", expect: Apple},
		{description: "declared value", input: "1", expect: Apple},
		{description: "surrounding whitespace", input: " \tKiwi\n", expect: Kiwi},
		{description: "signed declared value", input: "+2", expect: Banana},
		{description: "undeclared name", input: "Papaya", expectErr: true},
		{description: "undeclared value", input: "4", expectErr: true},
		{description: "zero value", input: "0", expectErr: true},
		{description: "case mismatch", input: "apple", expectErr: true},
		{description: "empty", input: "", expectErr: true},
		{description: "out of width", input: "99999999999999999999", expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := To(FruitKind, testCase.input)
		if testCase.expectErr {
			assert.Truef(t, errors.Is(err, ErrInvalidEnumValue), testCase.description)
			assert.Equal(t, Fruit(0), actual, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestToNullable_Enum(t *testing.T) {
	for _, input := range []string{"Papaya", "4"} {
		assert.Nil(t, ToNullable(FruitKind, input), input)
	}
	actual := ToNullable(FruitKind, "Banana")
	require.NotNil(t, actual)
	assert.Equal(t, Banana, *actual)
}

func TestToOrDefault_Enum(t *testing.T) {
	var testCases = []struct {
		description  string
		input        *string
		defaultValue Fruit
		expect       Fruit
		expectErr    bool
	}{
		{description: "undeclared name uses default", input: stringPtr("Papaya"), defaultValue: Banana, expect: Banana},
		{description: "undeclared value uses default", input: stringPtr("4"), defaultValue: Banana, expect: Banana},
		{description: "null uses default", input: nil, defaultValue: Kiwi, expect: Kiwi},
		{description: "declared name ignores default", input: stringPtr("Apple"), expect: Apple},
		{description: "declared value ignores default", input: stringPtr("1"), expect: Apple},
		{description: "undeclared default rejected", input: stringPtr("Papaya"), expectErr: true},
		{description: "undeclared value with undeclared default rejected", input: stringPtr("4"), defaultValue: Fruit(7), expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := ToOrDefault(FruitKind, testCase.input, testCase.defaultValue)
		if testCase.expectErr {
			assert.Truef(t, IsKind(err, KindInvalidEnumValue), testCase.description)
			assert.False(t, IsData(err), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestTo_Primitives(t *testing.T) {
	boolCases := map[string]bool{"true": true, "1": true, "false": false, "0": false, " TRUE ": true}
	for input, expect := range boolCases {
		actual, err := To(Bool, input)
		assert.Nil(t, err, input)
		assert.Equal(t, expect, actual, input)
	}
	intCases := map[string]int{"32": 32, "-1": -1}
	for input, expect := range intCases {
		actual, err := To(Int, input)
		assert.Nil(t, err, input)
		assert.Equal(t, expect, actual, input)
	}
	_, err := To(Int16, "40000")
	assert.True(t, errors.Is(err, ErrFormat))
	_, err = To(Bool, "yes")
	assert.True(t, IsKind(err, KindFormat))
	assert.Contains(t, err.Error(), "'yes' is not a valid bool value")
}

func TestTo_DateTime(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC) }
	kind := DateTimeIn(ftime.Options{Location: time.UTC, Now: now})
	var testCases = []struct {
		description string
		input       string
		expect      time.Time
	}{
		{description: "date", input: "2002-09-24", expect: time.Date(2002, 9, 24, 0, 0, 0, 0, time.UTC)},
		{description: "date utc", input: "2002-09-24Z", expect: time.Date(2002, 9, 24, 0, 0, 0, 0, time.UTC)},
		{description: "date with offset", input: "2002-09-24+06:00", expect: time.Date(2002, 9, 23, 18, 0, 0, 0, time.UTC)},
		{description: "time with fraction", input: "09:30:10.5", expect: time.Date(2024, 3, 15, 9, 30, 10, 500000000, time.UTC)},
		{description: "time utc", input: "09:30:10Z", expect: time.Date(2024, 3, 15, 9, 30, 10, 0, time.UTC)},
		{description: "date time", input: "2002-05-30T09:30:00", expect: time.Date(2002, 5, 30, 9, 30, 0, 0, time.UTC)},
		{description: "date time with fraction", input: "2002-05-30T09:30:10.5", expect: time.Date(2002, 5, 30, 9, 30, 10, 500000000, time.UTC)},
		{description: "date time utc", input: "2002-05-30T09:30:10Z", expect: time.Date(2002, 5, 30, 9, 30, 10, 0, time.UTC)},
	}
	for _, testCase := range testCases {
		actual, err := To(kind, testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.True(t, testCase.expect.Equal(actual), testCase.description+": "+actual.String())
	}
}

func TestToOrDefault_Primitives(t *testing.T) {
	fallback := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	kind := DateTimeIn(ftime.Options{Location: time.UTC})
	var testCases = []struct {
		description string
		input       *string
		expectInt   int32
		expectTime  time.Time
	}{
		{description: "malformed", input: stringPtr("x"), expectInt: 7, expectTime: fallback},
		{description: "null", input: nil, expectInt: 7, expectTime: fallback},
		{description: "blank", input: stringPtr("  "), expectInt: 7, expectTime: fallback},
		{description: "valid", input: stringPtr("2002"), expectInt: 2002, expectTime: fallback},
		{description: "valid date", input: stringPtr("2002-09-24"), expectInt: 7, expectTime: time.Date(2002, 9, 24, 0, 0, 0, 0, time.UTC)},
	}
	for _, testCase := range testCases {
		actualInt, err := ToOrDefault(Int32, testCase.input, 7)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expectInt, actualInt, testCase.description)

		actualTime, err := ToOrDefault(kind, testCase.input, fallback)
		assert.Nil(t, err, testCase.description)
		assert.True(t, testCase.expectTime.Equal(actualTime), testCase.description)
	}
}

func TestTo_DateTimeValue(t *testing.T) {
	kind := DateTimeValueIn(ftime.Options{Location: time.UTC})
	var testCases = []struct {
		description string
		input       string
		expectKind  ftime.Kind
	}{
		{description: "unzoned", input: "2002-05-30T09:30:10", expectKind: ftime.Unspecified},
		{description: "utc", input: "2002-05-30T09:30:10Z", expectKind: ftime.UTC},
		{description: "offset", input: "2002-05-30T09:30:10+00:00", expectKind: ftime.Local},
	}
	expect := time.Date(2002, 5, 30, 9, 30, 10, 0, time.UTC)
	for _, testCase := range testCases {
		actual, err := To(kind, testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectKind, actual.Kind, testCase.description)
		assert.True(t, expect.Equal(actual.Time), testCase.description)
	}
	value, ok := TryTo(DateTimeValue, "2002-05-30Z")
	assert.True(t, ok)
	assert.Equal(t, ftime.UTC, value.Kind)
	_, ok = TryTo(DateTimeValue, "0000-01-01")
	assert.False(t, ok)
}

func TestTo_NullInput(t *testing.T) {
	var null *string
	_, err := To(Int32, null)
	assert.True(t, errors.Is(err, ErrNullInput))
	assert.True(t, IsData(err))
	_, err = To(FruitKind, null)
	assert.True(t, IsKind(err, KindNullInput))

	value, ok := TryTo(Int32, null)
	assert.False(t, ok)
	assert.Equal(t, int32(0), value)
	assert.Nil(t, ToNullable(Bool, null))

	actual, err := To(Int32, stringPtr(" 12 "))
	assert.Nil(t, err)
	assert.Equal(t, int32(12), actual)
}

func TestTryTo_NeverFails(t *testing.T) {
	inputs := []string{"", " ", "abc", "-", "1e400", "{}", "\x00", "9223372036854775808", "Apple", "2002-13-45", "NaN"}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			TryTo(Bool, input)
			TryTo(Int64, input)
			TryTo(UInt64, input)
			TryTo(Float32, input)
			TryTo(Decimal, input)
			TryTo(Char, input)
			TryTo(GUID, input)
			TryTo(DateTime, input)
			TryTo(DateTimeOffset, input)
			TryTo(FruitKind, input)
		}, input)
	}
	value, ok := TryTo(UInt16, "65535")
	assert.True(t, ok)
	assert.Equal(t, uint16(65535), value)
}

func TestNilKind(t *testing.T) {
	var kind Kind[int32]
	_, err := To(kind, "1")
	assert.True(t, errors.Is(err, ErrUnsupportedType))
	assert.False(t, IsData(err))
	_, err = ToOrDefault(kind, "1", 2)
	assert.True(t, IsKind(err, KindUnsupportedType))
	assert.Panics(t, func() { TryTo(kind, "1") })
	assert.Panics(t, func() { ToNullable(kind, "1") })
}
