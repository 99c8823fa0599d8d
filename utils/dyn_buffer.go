package utils

// DynBuffer is a growable buffer whose storage is retained across Reset, so a
// buffer reused every step stops allocating once it reaches its working size.
type DynBuffer[T any] struct {
	cells []T
}

func NewDynBuffer[T any](capacity int) *DynBuffer[T] {
	return &DynBuffer[T]{
		cells: make([]T, 0, capacity),
	}
}

func (db *DynBuffer[T]) Add(cell T) {
	db.cells = append(db.cells, cell)
}

func (db *DynBuffer[T]) Cells() []T {
	return db.cells
}

func (db *DynBuffer[T]) Len() int {
	return len(db.cells)
}

func (db *DynBuffer[T]) Reset() {
	db.cells = db.cells[:0]
}
