package utils

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailBox(t *testing.T) {
	var (
		NP = 4
		mb = NewMailBox[int](NP)
		wg = sync.WaitGroup{}
	)
	for round := 0; round < 3; round++ {
		for n := 0; n < NP; n++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				mb.PostMessage(n, (n+1)%NP, 100*round+n)
				mb.PostMessage(n, (n+NP-1)%NP, 100*round+n)
				mb.DeliverMyMessages(n)
			}(n)
		}
		wg.Wait()
		for n := 0; n < NP; n++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				mb.ReceiveMyMessages(n)
			}(n)
		}
		wg.Wait()
		for n := 0; n < NP; n++ {
			msgs := append([]int{}, mb.Messages(n)...)
			sort.Ints(msgs)
			expected := []int{100*round + (n+1)%NP, 100*round + (n+NP-1)%NP}
			sort.Ints(expected)
			assert.Equal(t, expected, msgs)
			mb.ClearMyMessages(n)
			assert.Equal(t, 0, len(mb.Messages(n)))
		}
	}
	assert.Panics(t, func() { mb.PostMessage(0, NP, 1) })
}

func TestDynBuffer(t *testing.T) {
	db := NewDynBuffer[float32](2)
	db.Add(1)
	db.Add(2)
	db.Add(3)
	assert.Equal(t, []float32{1, 2, 3}, db.Cells())
	db.Reset()
	assert.Equal(t, 0, db.Len())
	db.Add(4)
	assert.Equal(t, []float32{4}, db.Cells())
}
