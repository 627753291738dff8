package repositories

// RepositoryProvider aggregates all repository facades for dependency injection.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	CheckInRepo     CheckInRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	PsychartistRepo PsychartistRepositoryFacade
}
