package compare

// workerPool lends out a fixed set of items. get blocks while every item is
// in use.
type workerPool[T any] struct {
	items []T
	free  chan T
}

func newWorkerPool[T any](items []T) *workerPool[T] {
	p := &workerPool[T]{items: items, free: make(chan T, len(items))}
	for _, it := range items {
		p.free <- it
	}
	return p
}

func (p *workerPool[T]) get() T  { return <-p.free }
func (p *workerPool[T]) put(v T) { p.free <- v }

// each calls fn for every item whether or not it is lent out.
func (p *workerPool[T]) each(fn func(T)) {
	for _, it := range p.items {
		fn(it)
	}
}
