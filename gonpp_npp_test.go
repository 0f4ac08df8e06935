//go:build npp && cgo

package gonpp_test

import (
	"testing"

	"github.com/GreatValueCreamSoda/gonpp"
)

// devices returns the number of CUDA devices, skipping the test when there
// are none.
func devices(t *testing.T) int {
	t.Helper()
	count, err := gonpp.GetDeviceCount()
	if err != nil || count == 0 {
		t.Skipf("no CUDA device: %v", err)
	}
	return count
}

func Test_Hardware_Versions(t *testing.T) {
	devices(t)
	version, err := gonpp.GetVersion()
	if err != nil {
		t.Fatal(err)
	}
	runtime, err := gonpp.GetRuntimeVersion()
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("NPP %s CUDA runtime %d", version, runtime)
}

func Test_Hardware_FullGpuCheck(t *testing.T) {
	for i := range devices(t) {
		info, err := gonpp.GetDeviceInfo(i)
		if err != nil {
			t.Fatal(err)
		}
		t.Log(info.GetString())
		if err := gonpp.FullGpuCheck(i); err != nil {
			t.Fatal(err)
		}
	}
}

func Test_Hardware_AddAndSum(t *testing.T) {
	devices(t)
	const width, height = 64, 32

	a, err := gonpp.NewImage(gonpp.Format8uC1, width, height)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	b, err := gonpp.NewImage(gonpp.Format8uC1, width, height)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	host := make([]byte, width*height)
	for i := range host {
		host[i] = byte(i % 100)
	}
	if err := a.Upload(nil, host, width); err != nil {
		t.Fatal(err)
	}
	if err := b.Set(nil, 10); err != nil {
		t.Fatal(err)
	}
	if err := a.Add(nil, b, b, 0); err != nil {
		t.Fatal(err)
	}

	out := make([]byte, width*height)
	if err := b.Download(nil, out, width); err != nil {
		t.Fatal(err)
	}
	var want float64
	for i := range out {
		if out[i] != host[i]+10 {
			t.Fatalf("pixel %d: got %d, want %d", i, out[i], host[i]+10)
		}
		want += float64(out[i])
	}

	sum, err := b.Sum(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sum[0] != want {
		t.Fatalf("sum: got %f, want %f", sum[0], want)
	}
}

func Test_Hardware_PSNRIdentical(t *testing.T) {
	devices(t)
	img, err := gonpp.NewImage(gonpp.Format8uC1, 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()
	if err := img.Set(nil, 128); err != nil {
		t.Fatal(err)
	}
	mse, err := img.MSE(nil, img, nil)
	if err != nil {
		t.Fatal(err)
	}
	if mse != 0 {
		t.Fatalf("MSE of an image with itself: %f", mse)
	}
}
