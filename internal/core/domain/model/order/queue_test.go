package order_test

import (
	"testing"

	"bistro/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueue(t *testing.T) {
	t.Run("should create an empty queue", func(t *testing.T) {
		queue := order.NewQueue()

		assert.NoError(t, queue.Validate())
		assert.Equal(t, 0, queue.Len())
		assert.Empty(t, queue.Tickets())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var queue order.Queue

		err := queue.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrQueueIsNotConstructed)
	})
}

func TestQueue_Enqueue(t *testing.T) {
	t.Run("should append tickets in placement order", func(t *testing.T) {
		queue := order.NewQueue()
		first := newTestTicket(t, "Margherita Pizza")
		second := newTestTicket(t, "Beef Tacos")

		require.NoError(t, queue.Enqueue(first))
		require.NoError(t, queue.Enqueue(second))

		assert.Equal(t, 2, queue.Len())
		tickets := queue.Tickets()
		assert.True(t, tickets[0].IsEqual(first))
		assert.True(t, tickets[1].IsEqual(second))
	})

	t.Run("should reject nil ticket", func(t *testing.T) {
		queue := order.NewQueue()

		err := queue.Enqueue(nil)

		require.Error(t, err)
		assert.Equal(t, 0, queue.Len())
	})

	t.Run("should reject zero value ticket", func(t *testing.T) {
		queue := order.NewQueue()
		var ticket order.Ticket

		err := queue.Enqueue(&ticket)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrTicketIsNotConstructed)
	})

	t.Run("should reject duplicate ticket ID", func(t *testing.T) {
		queue := order.NewQueue()
		ticket := newTestTicket(t, "Margherita Pizza")
		require.NoError(t, queue.Enqueue(ticket))

		err := queue.Enqueue(ticket)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrTicketAlreadyQueued)
		assert.Equal(t, 1, queue.Len())
	})

	t.Run("should accept a dequeued ticket again", func(t *testing.T) {
		queue := order.NewQueue()
		ticket := newTestTicket(t, "Margherita Pizza")
		require.NoError(t, queue.Enqueue(ticket))

		taken, err := queue.Dequeue()
		require.NoError(t, err)

		require.NoError(t, queue.Enqueue(taken))
		assert.Equal(t, 1, queue.Len())
	})
}

func TestQueue_Dequeue(t *testing.T) {
	t.Run("should serve tickets first in first out", func(t *testing.T) {
		queue := order.NewQueue()
		first := newTestTicket(t, "Margherita Pizza")
		second := newTestTicket(t, "Beef Tacos")
		third := newTestTicket(t, "Pad Thai")
		require.NoError(t, queue.Enqueue(first))
		require.NoError(t, queue.Enqueue(second))
		require.NoError(t, queue.Enqueue(third))

		taken, err := queue.Dequeue()
		require.NoError(t, err)
		assert.True(t, taken.IsEqual(first))

		taken, err = queue.Dequeue()
		require.NoError(t, err)
		assert.True(t, taken.IsEqual(second))

		taken, err = queue.Dequeue()
		require.NoError(t, err)
		assert.True(t, taken.IsEqual(third))

		assert.Equal(t, 0, queue.Len())
	})

	t.Run("should fail on empty queue", func(t *testing.T) {
		queue := order.NewQueue()

		_, err := queue.Dequeue()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrQueueEmpty)
	})
}

func TestQueue_Peek(t *testing.T) {
	t.Run("should return the front ticket without removing it", func(t *testing.T) {
		queue := order.NewQueue()
		first := newTestTicket(t, "Margherita Pizza")
		require.NoError(t, queue.Enqueue(first))
		require.NoError(t, queue.Enqueue(newTestTicket(t, "Beef Tacos")))

		front, err := queue.Peek()

		require.NoError(t, err)
		assert.True(t, front.IsEqual(first))
		assert.Equal(t, 2, queue.Len())
	})

	t.Run("should fail on empty queue", func(t *testing.T) {
		queue := order.NewQueue()

		_, err := queue.Peek()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrQueueEmpty)
	})
}

func TestQueue_Tickets(t *testing.T) {
	t.Run("should return a copy", func(t *testing.T) {
		queue := order.NewQueue()
		require.NoError(t, queue.Enqueue(newTestTicket(t, "Margherita Pizza")))
		require.NoError(t, queue.Enqueue(newTestTicket(t, "Beef Tacos")))

		tickets := queue.Tickets()
		tickets[0] = nil

		fresh := queue.Tickets()
		require.NotNil(t, fresh[0])
		assert.Equal(t, 2, queue.Len())
	})
}

func TestQueue_ReplaceAll(t *testing.T) {
	t.Run("should swap the queue contents preserving order", func(t *testing.T) {
		queue := order.NewQueue()
		require.NoError(t, queue.Enqueue(newTestTicket(t, "Margherita Pizza")))
		retained1 := newTestTicket(t, "Beef Tacos")
		retained2 := newTestTicket(t, "Pad Thai")

		err := queue.ReplaceAll([]*order.Ticket{retained1, retained2})

		require.NoError(t, err)
		assert.Equal(t, 2, queue.Len())
		tickets := queue.Tickets()
		assert.True(t, tickets[0].IsEqual(retained1))
		assert.True(t, tickets[1].IsEqual(retained2))
	})

	t.Run("should reject duplicates and leave the queue unchanged", func(t *testing.T) {
		queue := order.NewQueue()
		original := newTestTicket(t, "Margherita Pizza")
		require.NoError(t, queue.Enqueue(original))
		duplicate := newTestTicket(t, "Beef Tacos")

		err := queue.ReplaceAll([]*order.Ticket{duplicate, duplicate})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrTicketAlreadyQueued)
		assert.Equal(t, 1, queue.Len())
		front, _ := queue.Peek()
		assert.True(t, front.IsEqual(original))
	})

	t.Run("should reject nil tickets and leave the queue unchanged", func(t *testing.T) {
		queue := order.NewQueue()
		require.NoError(t, queue.Enqueue(newTestTicket(t, "Margherita Pizza")))

		err := queue.ReplaceAll([]*order.Ticket{newTestTicket(t, "Beef Tacos"), nil})

		require.Error(t, err)
		assert.Equal(t, 1, queue.Len())
	})

	t.Run("empty input clears the queue", func(t *testing.T) {
		queue := order.NewQueue()
		require.NoError(t, queue.Enqueue(newTestTicket(t, "Margherita Pizza")))

		require.NoError(t, queue.ReplaceAll(nil))

		assert.Equal(t, 0, queue.Len())
	})

	t.Run("enqueue after replace keeps duplicate detection consistent", func(t *testing.T) {
		queue := order.NewQueue()
		require.NoError(t, queue.Enqueue(newTestTicket(t, "Margherita Pizza")))
		retained := newTestTicket(t, "Beef Tacos")
		require.NoError(t, queue.ReplaceAll([]*order.Ticket{retained}))

		err := queue.Enqueue(retained)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrTicketAlreadyQueued)
	})
}

func TestQueue_Clear(t *testing.T) {
	t.Run("should remove every ticket", func(t *testing.T) {
		queue := order.NewQueue()
		ticket := newTestTicket(t, "Margherita Pizza")
		require.NoError(t, queue.Enqueue(ticket))

		queue.Clear()

		assert.Equal(t, 0, queue.Len())
		// A cleared ticket may be queued again.
		require.NoError(t, queue.Enqueue(ticket))
	})
}

func TestQueue_Clone(t *testing.T) {
	t.Run("should deep copy the queue", func(t *testing.T) {
		queue := order.NewQueue()
		ticket := newTestTicket(t, "Margherita Pizza")
		require.NoError(t, queue.Enqueue(ticket))

		clone := queue.Clone()

		require.NoError(t, clone.Validate())
		assert.Equal(t, queue.Len(), clone.Len())

		// Tickets are cloned, not shared.
		cloneFront, err := clone.Peek()
		require.NoError(t, err)
		require.NoError(t, cloneFront.Fulfill("Grill"))
		assert.Equal(t, order.Pending, ticket.Status())

		// Draining the clone must not affect the original.
		_, err = clone.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, 1, queue.Len())
		assert.Equal(t, 0, clone.Len())
	})
}
