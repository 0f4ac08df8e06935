package gonpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetVersion(t *testing.T) {
	useFake(t)
	assert.True(t, Available())

	version, err := GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "12.3.1", version.String())

	runtime, err := GetRuntimeVersion()
	require.NoError(t, err)
	driver, err := GetDriverVersion()
	require.NoError(t, err)
	t.Logf("NPP %s runtime %d driver %d", version, runtime, driver)
}

func Test_GetDeviceInfo(t *testing.T) {
	useFake(t)

	count, err := GetDeviceCount()
	require.NoError(t, err)
	for i := range count {
		info, err := GetDeviceInfo(i)
		require.NoError(t, err)
		assert.Equal(t, "Fake GPU", info.Name)
		t.Log(info.GetString())
	}
}

func Test_FullGpuCheck(t *testing.T) {
	f := useFake(t)

	require.NoError(t, FullGpuCheck(1))
	assert.Equal(t, []string{"setDevice", "streamContext", "mallocImage",
		"set", "synchronize", "freeImage"}, f.names())
	assert.Equal(t, 1, f.calls[0].args[0])

	f.calls = nil
	f.cudaCode = 100
	var rt *RuntimeError
	require.ErrorAs(t, FullGpuCheck(0), &rt)
	assert.Equal(t, "cudaSetDevice", rt.Func)
}

func Test_NewStreamContext(t *testing.T) {
	useFake(t)

	sc, err := NewStreamContext(0x1234)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x1234), sc.Stream)
	assert.Equal(t, 40, sc.MultiProcessorCount)

	require.NoError(t, Synchronize(sc))
	require.NoError(t, Synchronize(nil))
}
