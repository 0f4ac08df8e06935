package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_WorkerPool(t *testing.T) {
	p := newWorkerPool([]int{1, 2})
	a, b := p.get(), p.get()
	assert.ElementsMatch(t, []int{1, 2}, []int{a, b})

	got := make(chan int)
	go func() { got <- p.get() }()

	select {
	case <-got:
		t.Fatal("get returned while every item was lent out")
	case <-time.After(20 * time.Millisecond):
	}

	p.put(b)
	assert.Equal(t, b, <-got)

	var seen []int
	p.each(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{1, 2}, seen)
}
