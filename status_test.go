package gonpp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Status(t *testing.T) {
	assert.True(t, StatusNoError.IsNone())
	assert.False(t, StatusNoError.IsError())
	assert.True(t, StatusDoubleSizeWarning.IsWarning())
	assert.False(t, StatusDoubleSizeWarning.IsError())
	assert.True(t, StatusStep.IsError())

	assert.Equal(t, "NPP_STEP_ERROR", StatusStep.String())
	assert.Equal(t, "NPP_ERROR", StatusGenericError.String())
	assert.ErrorIs(t, checkStatus("nppiSet_8u_C1R_Ctx", StatusGenericError),
		StatusGenericError)
	assert.Equal(t, "NppStatus(-12345)", Status(-12345).String())
}

func Test_CheckStatus(t *testing.T) {
	assert.NoError(t, checkStatus("nppiCopy_8u_C1R_Ctx", StatusNoError))
	assert.NoError(t, checkStatus("nppiCopy_8u_C1R_Ctx",
		StatusMisalignedDstROIWarning))

	err := checkStatus("nppiCopy_8u_C1R_Ctx", StatusNullPointer)
	require.Error(t, err)
	assert.ErrorIs(t, err, StatusNullPointer)
	assert.NotErrorIs(t, err, StatusStep)
	assert.Equal(t, "gonpp: nppiCopy_8u_C1R_Ctx returned "+
		"NPP_NULL_POINTER_ERROR (-8)", err.Error())

	wrapped := fmt.Errorf("resize: %w", err)
	var se *StatusError
	require.True(t, errors.As(wrapped, &se))
	assert.Equal(t, StatusNullPointer, se.Status)
}

func Test_RuntimeError(t *testing.T) {
	f := useFake(t)
	f.cudaCode = 700

	_, err := NewStreamContext(0)
	var rt *RuntimeError
	require.ErrorAs(t, err, &rt)
	assert.Equal(t, 700, rt.Code)
	assert.Equal(t, "gonpp: cudaDeviceGetAttribute failed: fake failure "+
		"(cudaError 700)", rt.Error())
}

func Test_Logger(t *testing.T) {
	f := useFake(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)
	t.Cleanup(func() { SetLogger(nil) })

	img := newTestImage(t, Format8uC1, 8, 8)
	hook.Reset()

	require.NoError(t, img.Set(nil, 1))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "nppiSet_8u_C1R_Ctx", entry.Data["func"])

	f.status = StatusDoubleSizeWarning
	require.NoError(t, img.Set(nil, 1))
	entry = hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, int(StatusDoubleSizeWarning), entry.Data["status"])

	f.status = StatusSize
	require.Error(t, img.Set(nil, 1))
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func Test_Logger_DefaultSilent(t *testing.T) {
	SetLogger(nil)
	l, ok := Logger().(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, logrus.PanicLevel, l.GetLevel())
}
