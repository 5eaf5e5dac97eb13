package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueText(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "empty", v: EmptyValue(), want: ""},
		{name: "string", v: StringValue("hello"), want: "hello"},
		{name: "int", v: IntValue(42), want: "42"},
		{name: "negative int", v: IntValue(-7), want: "-7"},
		{name: "float", v: FloatValue(1.5), want: "1.5"},
		{name: "bool true", v: BoolValue(true), want: "true"},
		{name: "bool false", v: BoolValue(false), want: "false"},
		{
			name: "date only",
			v:    DateValue(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
			want: "2024-03-15",
		},
		{
			name: "date time",
			v:    DateValue(time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC)),
			want: "2024-03-15T09:30:05",
		},
		{
			name: "duration",
			v:    DurationValue(time.Hour + 30*time.Minute + 15*time.Second),
			want: "PT01H30M15S",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Text())
		})
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, IntValue(1).Equal(IntValue(1)))
	assert.False(t, IntValue(1).Equal(IntValue(2)))
	assert.False(t, IntValue(1).Equal(FloatValue(1)))
	assert.True(t, EmptyValue().Equal(Value{}))
	assert.True(t, StringValue("a").Equal(StringValue("a")))
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, DateValue(d).Equal(DateValue(d)))
}

func TestISODurationRoundTrip(t *testing.T) {
	durations := []time.Duration{
		0,
		15 * time.Second,
		time.Hour + 30*time.Minute + 15*time.Second,
		-(2*time.Hour + 5*time.Second),
		1500 * time.Millisecond,
	}
	for _, d := range durations {
		s := FormatISODuration(d)
		got, err := ParseISODuration(s)
		require.NoError(t, err, s)
		assert.Equal(t, d, got, s)
	}
}

func TestParseISODurationInvalid(t *testing.T) {
	for _, s := range []string{"", "1H", "PT1X", "PT1", "P1DT1H"} {
		_, err := ParseISODuration(s)
		assert.Error(t, err, s)
	}
}

func TestCellBasics(t *testing.T) {
	var nilCell *Cell
	assert.True(t, nilCell.IsEmpty())
	assert.Equal(t, "", nilCell.DisplayText())
	assert.Nil(t, nilCell.Clone())

	c := NewCell(IntValue(3))
	assert.False(t, c.IsEmpty())
	assert.Equal(t, "3", c.DisplayText())

	c.Text = "three"
	assert.Equal(t, "three", c.DisplayText())

	clone := c.Clone()
	clone.Text = "changed"
	assert.Equal(t, "three", c.Text)

	assert.True(t, nilCell.Equal(&Cell{}))
	assert.False(t, nilCell.Equal(c))
	assert.True(t, c.Equal(c.Clone()))
}
