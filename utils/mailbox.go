package utils

import "fmt"

// MailBox passes messages between NP workers. The pattern within a step is:
// each worker posts, then delivers its own outbox; after a barrier every
// worker receives what was addressed to it.
type MailBox[T any] struct {
	NP           int
	MessageChans []chan *DynBuffer[T]    // One for each worker
	PostMsgQs    []map[int]*DynBuffer[T] // One for each worker, key is target worker
	ReceiveMsgQs []*DynBuffer[T]         // One for each worker
	MailFlag     []bool                  // Worker has messages in its outbox
}

func NewMailBox[T any](NP int) *MailBox[T] {
	mb := &MailBox[T]{
		NP:           NP,
		MessageChans: make([]chan *DynBuffer[T], NP),
		PostMsgQs:    make([]map[int]*DynBuffer[T], NP),
		ReceiveMsgQs: make([]*DynBuffer[T], NP),
		MailFlag:     make([]bool, NP),
	}
	for n := 0; n < NP; n++ {
		mb.MessageChans[n] = make(chan *DynBuffer[T], NP) // Worst case is all-to-all
		mb.PostMsgQs[n] = make(map[int]*DynBuffer[T])
		mb.ReceiveMsgQs[n] = NewDynBuffer[T](0)
	}
	return mb
}

func (mb *MailBox[T]) PostMessage(myThread, targetThread int, msg T) {
	if targetThread < 0 || targetThread > mb.NP-1 {
		panic(fmt.Errorf("target worker %d out of bounds [0,%d)", targetThread, mb.NP))
	}
	tgt, exists := mb.PostMsgQs[myThread][targetThread]
	if !exists {
		tgt = NewDynBuffer[T](0)
		mb.PostMsgQs[myThread][targetThread] = tgt
	}
	tgt.Add(msg)
	mb.MailFlag[myThread] = true
}

// DeliverMyMessages hands the outbox of myThread to its targets. Outbox buffers
// are drained by the receiver, so the sender must not post again before the
// receivers have run ReceiveMyMessages.
func (mb *MailBox[T]) DeliverMyMessages(myThread int) {
	if !mb.MailFlag[myThread] {
		return
	}
	for targetThread, msgBuffer := range mb.PostMsgQs[myThread] {
		if msgBuffer.Len() == 0 {
			continue
		}
		mb.MessageChans[targetThread] <- msgBuffer
	}
	mb.MailFlag[myThread] = false
}

func (mb *MailBox[T]) ReceiveMyMessages(myThread int) {
	for {
		select {
		case msgBuffer := <-mb.MessageChans[myThread]:
			for _, msg := range msgBuffer.Cells() {
				mb.ReceiveMsgQs[myThread].Add(msg)
			}
			msgBuffer.Reset() // Reset the originating buffer
		default:
			return
		}
	}
}

func (mb *MailBox[T]) Messages(myThread int) []T {
	return mb.ReceiveMsgQs[myThread].Cells()
}

func (mb *MailBox[T]) ClearMyMessages(myThread int) {
	mb.ReceiveMsgQs[myThread].Reset()
}
