package main

import (
	"testing"

	"github.com/npillmayer/fontdiff/ttj"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	intp := NewIntp(128)
	cmd, err := intp.parseCommand("cd:GPOS/lookup_list print:b:compact quit ls")
	require.NoError(t, err)
	assert.Equal(t, 4, cmd.count)
	assert.Equal(t, CD, cmd.op[0].code)
	assert.Equal(t, "GPOS/lookup_list", cmd.op[0].arg)
	assert.Equal(t, PRINT, cmd.op[1].code)
	assert.Equal(t, "b", cmd.op[1].arg)
	assert.Equal(t, "compact", cmd.op[1].format)
	assert.Equal(t, QUIT, cmd.op[2].code)
	assert.Equal(t, NOOP, cmd.op[3].code, "expected steps after quit to be ignored")
	cmd, err = intp.parseCommand("frobnicate")
	require.NoError(t, err)
	assert.Equal(t, HELP, cmd.op[0].code)
}

func TestNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	intp := NewIntp(128)
	err, _ := cdOp(intp, &Op{arg: "head"})
	assert.Equal(t, ERR_NO_FONT, err)
	require.NoError(t, intp.loadFont("go-regular", 1), "expected font to move to slot A")
	require.NotNil(t, intp.fonts[0])
	require.Nil(t, intp.fonts[1])
	require.NoError(t, intp.loadFont("go-bold", 1))
	assert.Equal(t, "( A=Go Regular B=Go Bold ) /", intp.String())
	//
	err, _ = cdOp(intp, &Op{arg: "head"})
	require.NoError(t, err)
	assert.Equal(t, []string{"head"}, intp.path)
	err, _ = cdOp(intp, &Op{arg: "no-such-field"})
	assert.Error(t, err)
	assert.Equal(t, []string{"head"}, intp.path, "expected failed cd to keep the path")
	err, _ = cdOp(intp, &Op{arg: "../maxp"})
	require.NoError(t, err)
	assert.Equal(t, []string{"maxp"}, intp.path)
	err, _ = upOp(intp, &Op{arg: "5"})
	require.NoError(t, err)
	assert.Empty(t, intp.path)
	err, _ = cdOp(intp, &Op{arg: "/head"})
	require.NoError(t, err)
	err, _ = cdOp(intp, &Op{})
	require.NoError(t, err)
	assert.Empty(t, intp.path)
}

func TestDiffAndKerns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	intp := NewIntp(128)
	require.NoError(t, intp.loadFont("go-regular", 0))
	err, _ := diffOp(intp, &Op{})
	assert.Equal(t, ERR_NO_SECOND_FONT, err)
	err, _ = kernsOp(intp, &Op{})
	assert.NoError(t, err)
	require.NoError(t, intp.loadFont("go-regular", 1))
	err, _ = diffOp(intp, &Op{})
	assert.NoError(t, err)
	left, okA := intp.node(0)
	right, okB := intp.node(1)
	require.True(t, okA && okB)
	assert.False(t, ttj.IsSomething(ttj.Diff(left, right, 128)), "expected identical fonts to have no differences")
}

func TestStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	arr := ttj.NewArray(ttj.String("x"), ttj.Int(3))
	if d, ok := step(arr, "1"); !ok || d.String() != "3" {
		t.Errorf("expected item 1 to be 3, have %s", d)
	}
	for _, key := range []string{"2", "-1", "x"} {
		if _, ok := step(arr, key); ok {
			t.Errorf("expected no item for key %q", key)
		}
	}
	if _, ok := step(ttj.String("s"), "0"); ok {
		t.Errorf("expected scalars to have no entries")
	}
}

func TestKernPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	kerns := ttj.NewMap()
	for _, pair := range []string{"T/o", "A/W", "A/V", "AE/V"} {
		kerns.Set(pair, ttj.Int(-10))
	}
	assert.Equal(t, []string{"A/V", "A/W"}, kernPairs(kerns, "A"))
	assert.Len(t, kernPairs(kerns, ""), 4)
}
