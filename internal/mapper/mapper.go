// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"release-config-exchange/internal/api"
	"release-config-exchange/internal/entities"
)

// FromAPICredentials builds entities.Credentials from the transport body.
func FromAPICredentials(src api.CredentialsBody) entities.Credentials {
	return entities.Credentials{
		AccessToken:      src.AccessToken,
		OrganizationName: src.OrganizationName,
		ProjectName:      src.ProjectName,
	}
}

// ToAPIProject maps entities.Project to its full representation.
func ToAPIProject(p entities.Project) api.Project {
	out := api.Project{
		ID:            p.ID,
		RepoOwner:     p.RepoOwner,
		RepoName:      p.RepoName,
		Secret:        p.Secret,
		Enabled:       p.Enabled,
		MissingConfig: p.MissingConfig(),
	}

	switch r := p.Requester.(type) {
	case *entities.CircleCIConfig:
		out.RequesterCircleCI = &api.TokenRequester{AccessToken: r.AccessToken}
	case *entities.TravisCIConfig:
		out.RequesterTravisCI = &api.TokenRequester{AccessToken: r.AccessToken}
	case *entities.AzureDevOpsConfig:
		out.RequesterAzureDevOps = &api.AzureDevOpsRequester{
			AccessToken:      r.AccessToken,
			OrganizationName: r.OrganizationName,
			ProjectName:      r.ProjectName,
		}
	}

	if s := p.ResponderSlack; s != nil {
		out.ResponderSlack = &api.SlackResponder{
			TeamName:          s.TeamName,
			ChannelName:       s.ChannelName,
			TeamIcon:          s.TeamIcon,
			UsernameToMention: s.UsernameToMention,
		}
	}

	return out
}

// ToAPILink maps a started link to transport model.
func ToAPILink(res entities.LinkResult) api.LinkResponse {
	return api.LinkResponse{
		Linker: api.Linker{
			ID:        res.Linker.ID.String(),
			ProjectID: res.Linker.ProjectID,
			CreatedAt: res.Linker.CreatedAt,
		},
		SlackClientID: res.SlackClientID,
	}
}
