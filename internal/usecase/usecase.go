package usecase

import (
	"release-config-exchange/internal/repository"
	"release-config-exchange/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ProjectUsecaseInterface
	RequesterUsecaseInterface
	ResponderUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	checker domain.CredentialChecker,
	authz domain.Authorizer,
	opts domain.Options,
) InterfaceUsecase {
	return domain.New(log, repo, checker, authz, opts)
}
