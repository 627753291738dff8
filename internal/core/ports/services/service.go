package services

// ServiceContainer aggregates all service facades for dependency injection.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	CheckIn     CheckInSvcFacade
	Journal     JournalSvcFacade
	Psychartist PsychartistSvcFacade
}
