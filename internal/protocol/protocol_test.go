package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotodir/internal/model"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		r    Result
		want string
	}{
		{"navigate", Navigate("/home/u/project"), "0#0#/home/u/project"},
		{"navigate with clear", Navigate("/srv").WithClear(true), "1#0#/srv"},
		{"value", Value("saved edit"), "0#1#saved edit"},
		{"value with extras", Value("a", "b", "c"), "0#1#a#b#c"},
		{"empty value", Value(""), "0#1#"},
		{"hash replaced", Value("issue #4"), "0#1#issue ?4"},
		{"newlines flattened", Value("one\ntwo\r\nthree"), "0#1#one two three"},
		{"extras sanitised", Value("x", "a#b"), "0#1#x#a?b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Encode())
		})
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, "0#1#(none)", Lines(nil, "(none)").Encode())
	assert.Equal(t, "0#1#a#b", Lines([]string{"a", "b"}, "(none)").Encode())
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	_, err := Navigate("/tmp").WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "0#0#/tmp\n", buf.String())
}

func TestDecode(t *testing.T) {
	r, err := Decode("1#1#first#second\n")
	require.NoError(t, err)
	assert.True(t, r.Clear)
	assert.Equal(t, ModeValue, r.Mode)
	assert.Equal(t, "first", r.Payload)
	assert.Equal(t, []string{"second"}, r.Extra)

	r, err = Decode("0#0#/home/u")
	require.NoError(t, err)
	assert.Equal(t, Navigate("/home/u"), r)

	for _, bad := range []string{"", "0#0", "2#0#x", "0#9#x"} {
		_, err := Decode(bad)
		assert.Error(t, err, "line %q", bad)
	}
}

func TestEncodeDecode(t *testing.T) {
	in := Value("a", "b").WithClear(true)
	out, err := Decode(in.Encode())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSafe(t *testing.T) {
	assert.True(t, Safe("/home/u/project"))
	assert.False(t, Safe("/tmp/a#b"))
	assert.False(t, Safe("/tmp/a\nb"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		code Code
		exit int
	}{
		{nil, CodeOK, ExitOK},
		{fmt.Errorf("%w: edit", model.ErrUnknownLocation), CodeUnknown, ExitUnknown},
		{fmt.Errorf("%w: shortcut edit", model.ErrNotFound), CodeNotFound, ExitOK},
		{fmt.Errorf("%w: alias", model.ErrInvalidArgument), CodeInvalid, ExitInvalid},
		{fmt.Errorf("%w: disk", model.ErrIO), CodeIO, ExitIO},
		{fmt.Errorf("%w: code", model.ErrOpener), CodeOpener, ExitOpener},
		{errors.New("boom"), CodeInternal, ExitInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, Classify(tt.err), "%v", tt.err)
		assert.Equal(t, tt.exit, ExitCode(tt.err), "%v", tt.err)
	}
}

func TestFromError(t *testing.T) {
	r := FromError(fmt.Errorf("%w: %s", model.ErrUnknownLocation, "edit"))
	assert.Equal(t, "0#1#error: unknown location: edit", r.Encode())
	assert.Equal(t, ExitUnknown, r.Status)

	r = FromError(fmt.Errorf("%w: shortcut %s", model.ErrNotFound, "gone"))
	assert.Equal(t, "0#1#warning: not found: shortcut gone", r.Encode())
	assert.Equal(t, ExitOK, r.Status)
}
