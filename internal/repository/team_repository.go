package repository

import (
	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// TeamRepository manages support teams.
type TeamRepository interface {
	Seed(teams []domain.Team) bool
	List(match func(domain.Team) bool) []domain.Team
	GetByID(id string) (domain.Team, error)
	Create(team domain.Team)
	Patch(id string, patch []byte) (domain.Team, error)
	Delete(id string) (domain.Team, error)
	First() (domain.Team, bool)
}

type teamRepository struct {
	crudRepository[domain.Team]
}

// NewTeamRepository constructs repository.
func NewTeamRepository() TeamRepository {
	return &teamRepository{newCRUDRepository[domain.Team]()}
}

// First returns the earliest-seeded team, the default routing target for
// tickets created without a team.
func (r *teamRepository) First() (domain.Team, bool) {
	teams := r.records.List(nil)
	if len(teams) == 0 {
		return domain.Team{}, false
	}
	return teams[0], true
}
