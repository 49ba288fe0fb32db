package cli

import (
	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/boilerplate"
	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/config"
	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/copier"
	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/gitrepo"
	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/pkgmgr"
	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/scanner"
	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/search"
	"github.com/groundwork-cli/groundwork/internal/application"
)

func newValidateService() *application.ValidateService {
	return application.NewValidateService(
		scanner.New(),
		search.New(),
		gitrepo.New(),
		config.New(),
	)
}

func newInitService() *application.InitService {
	return application.NewInitService(
		boilerplate.New(),
		copier.New(),
		gitrepo.New(),
		pkgmgr.New(),
		newValidateService(),
	)
}
