package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mindcare-app/mindcare_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	checkInRepo := newPgxCheckInRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	psychartistRepo := newPgxPsychartistRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		CheckInRepo:     checkInRepo,
		JournalRepo:     journalRepo,
		PsychartistRepo: psychartistRepo,
	}
}
