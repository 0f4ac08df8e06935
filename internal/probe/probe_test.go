package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Detect_Missing(t *testing.T) {
	_, err := detect([]string{"libgonpp-does-not-exist.so"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_Detect(t *testing.T) {
	res, err := Detect()
	if err != nil {
		t.Skipf("no NPP runtime: %v", err)
	}
	assert.NotEmpty(t, res.Library)
	assert.Positive(t, res.Major)
	t.Log(res)
}

func Test_Result_String(t *testing.T) {
	r := Result{Library: "libnppc.so.12", Major: 12, Minor: 3, Build: 1}
	assert.Equal(t, "NPP 12.3.1 (libnppc.so.12)", r.String())

	r.RuntimeLibrary = "libcudart.so.12"
	r.RuntimeVersion = 12040
	assert.Equal(t, "NPP 12.3.1 (libnppc.so.12), CUDA runtime 12.4 "+
		"(libcudart.so.12)", r.String())
}
