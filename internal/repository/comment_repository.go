package repository

import (
	"sort"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CommentRepository manages ticket conversation threads.
type CommentRepository interface {
	Seed(comments []domain.Comment) bool
	ListByTicket(ticketID string) []domain.Comment
	Create(comment domain.Comment)
	Count() int
}

type commentRepository struct {
	crudRepository[domain.Comment]
}

// NewCommentRepository constructs repository.
func NewCommentRepository() CommentRepository {
	return &commentRepository{newCRUDRepository[domain.Comment]()}
}

// ListByTicket returns the ticket's thread sorted ascending by created_at.
func (r *commentRepository) ListByTicket(ticketID string) []domain.Comment {
	thread := r.records.List(func(c domain.Comment) bool { return c.TicketID == ticketID })
	sort.SliceStable(thread, func(i, j int) bool {
		return thread[i].CreatedAt.Before(thread[j].CreatedAt)
	})
	return thread
}
