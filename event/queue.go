package event

import (
	"sync/atomic"

	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/parameter"
)

// CommandQueue is a lock-free MPSC ring buffer of player commands
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (tick loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Push refuses new commands when full; queued commands are never dropped
type CommandQueue struct {
	commands  [parameter.CommandQueueSize]core.Command
	published [parameter.CommandQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                           // Read index
	tail      atomic.Uint64                           // Write index
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Push reserves a slot and publishes cmd
// Returns false if the queue is full
func (q *CommandQueue) Push(cmd core.Command) bool {
	for {
		currentTail := q.tail.Load()
		if currentTail-q.head.Load() >= parameter.CommandQueueSize {
			return false
		}

		if q.tail.CompareAndSwap(currentTail, currentTail+1) {
			idx := currentTail & parameter.CommandBufferMask
			q.commands[idx] = cmd
			q.published[idx].Store(true) // MUST be after write
			return true
		}
	}
}

// Consume returns pending commands in FIFO order and advances head
// Stops at the first reserved-but-unpublished slot; the rest is picked up next call
func (q *CommandQueue) Consume() []core.Command {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail == head {
		return nil
	}

	result := make([]core.Command, 0, tail-head)
	for i := head; i < tail; i++ {
		idx := i & parameter.CommandBufferMask
		if !q.published[idx].Load() {
			break // Writer incomplete
		}
		result = append(result, q.commands[idx])
		q.commands[idx] = core.Command{}
		q.published[idx].Store(false)
	}

	// Slots are cleared before head moves so producers never see a live slot as free
	q.head.Store(head + uint64(len(result)))
	if len(result) == 0 {
		return nil
	}
	return result
}

// Len returns approximate pending command count
func (q *CommandQueue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(tail - head)
}
