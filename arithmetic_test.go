package gonpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Add(t *testing.T) {
	f := useFake(t)
	a := newTestImage(t, Format8uC1, 8, 8)
	b := newTestImage(t, Format8uC1, 8, 8)
	dst := newTestImage(t, Format8uC1, 8, 8)

	require.NoError(t, a.Add(nil, b, dst, 1))
	call := f.last(t, "arithmetic")
	assert.Equal(t, opAdd, call.args[0])
	assert.Equal(t, a.roiPlane(), call.args[2])
	assert.Equal(t, b.roiPlane(), call.args[3])
	assert.Equal(t, dst.roiPlane(), call.args[4])
	assert.Equal(t, 1, call.args[6])
}

func Test_Sub_OperandOrder(t *testing.T) {
	f := useFake(t)
	a := newTestImage(t, Format32fC1, 8, 8)
	b := newTestImage(t, Format32fC1, 8, 8)
	dst := newTestImage(t, Format32fC1, 8, 8)

	require.NoError(t, a.Sub(nil, b, dst, 0))
	call := f.last(t, "arithmetic")
	assert.Equal(t, b.roiPlane(), call.args[2])
	assert.Equal(t, a.roiPlane(), call.args[3])
}

func Test_Arithmetic_Validation(t *testing.T) {
	useFake(t)
	a := newTestImage(t, Format8uC1, 8, 8)
	b := newTestImage(t, Format8uC1, 8, 8)
	dst := newTestImage(t, Format8uC1, 8, 8)

	assert.ErrorIs(t, a.Mul(nil, b, dst, -1), ErrInvalidArgument)

	wide := newTestImage(t, Format16uC1, 8, 8)
	assert.ErrorIs(t, a.Add(nil, wide, dst, 0), ErrUnsupportedFormat)

	small := newTestImage(t, Format8uC1, 4, 4)
	assert.ErrorIs(t, a.AbsDiff(nil, small, dst), ErrSizeMismatch)

	c3 := newTestImage(t, Format16uC3, 8, 8)
	assert.ErrorIs(t, c3.AbsDiff(nil, c3, c3), ErrUnsupportedFormat)

	s16 := newTestImage(t, Format16sC1, 8, 8)
	assert.ErrorIs(t, s16.Add(nil, s16, s16, 0), ErrUnsupportedFormat)

	require.NoError(t, b.Close())
	assert.ErrorIs(t, a.Add(nil, b, dst, 0), ErrClosed)
}

func Test_Arithmetic_ErrorStatus(t *testing.T) {
	f := useFake(t)
	f.status = StatusSize
	a := newTestImage(t, Format8uC1, 8, 8)

	err := a.Add(nil, a, a, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, StatusSize)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "nppiAdd_8u_C1RSfs_Ctx", se.Func)
	assert.Equal(t, StatusSize, a.LastStatus())
}

func Test_Arithmetic_Warning(t *testing.T) {
	f := useFake(t)
	f.status = StatusNoOperationWarning
	a := newTestImage(t, Format32fC1, 8, 8)

	require.NoError(t, a.Mul(nil, a, a, 0))
	assert.Equal(t, StatusNoOperationWarning, a.LastStatus())
	assert.True(t, a.LastStatus().IsWarning())
}

func Test_ArithSuffix(t *testing.T) {
	assert.Equal(t, "RSfs", arithSuffix(opAdd, Format8uC3))
	assert.Equal(t, "R", arithSuffix(opAdd, Format32fC3))
	assert.Equal(t, "R", arithSuffix(opAbsDiff, Format8uC1))
	assert.Equal(t, "nppiSub_16u_C4RSfs_Ctx",
		symbol(opSub.name(), Format16uC4, arithSuffix(opSub, Format16uC4)))
}

func Test_Threshold(t *testing.T) {
	f := useFake(t)
	img := newTestImage(t, Format16sC3, 8, 8)

	require.NoError(t, img.Threshold(nil, img, -5, CmpLess))
	call := f.last(t, "threshold")
	assert.Equal(t, -5.0, call.args[4])
	assert.Equal(t, CmpLess, call.args[5])

	assert.ErrorIs(t, img.Threshold(nil, img, 0, CmpEq), ErrInvalidArgument)

	c4 := newTestImage(t, Format8uC4, 8, 8)
	assert.ErrorIs(t, c4.Threshold(nil, c4, 0, CmpGreater),
		ErrUnsupportedFormat)
}
