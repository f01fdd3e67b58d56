package repository

import (
	"fmt"
	"sync/atomic"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// TicketRepository manages tickets and owns the display-id sequence.
type TicketRepository interface {
	Seed(tickets []domain.Ticket) bool
	List(match func(domain.Ticket) bool) []domain.Ticket
	GetByID(id string) (domain.Ticket, error)
	Create(ticket domain.Ticket)
	Update(id string, fn func(domain.Ticket) (domain.Ticket, error)) (domain.Ticket, error)
	Patch(id string, patch []byte) (domain.Ticket, error)
	Delete(id string) (domain.Ticket, error)
	NextDisplayID() string
	Count() int
}

type ticketRepository struct {
	crudRepository[domain.Ticket]
	seq atomic.Int64
}

// NewTicketRepository constructs repository.
func NewTicketRepository() TicketRepository {
	return &ticketRepository{crudRepository: newCRUDRepository[domain.Ticket]()}
}

// Seed fills the store and advances the sequence past the seeded batch so
// later labels never collide, even after deletes.
func (r *ticketRepository) Seed(tickets []domain.Ticket) bool {
	if !r.crudRepository.Seed(tickets) {
		return false
	}
	r.seq.Store(int64(len(tickets)))
	return true
}

// NextDisplayID returns the next sequential human-readable label. The
// counter only moves forward, so labels stay unique across delete/create.
func (r *ticketRepository) NextDisplayID() string {
	return fmt.Sprintf("TICK-%04d", r.seq.Add(1))
}
