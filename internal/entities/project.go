package entities

// Project is a repository onboarded for release credential requests.
type Project struct {
	ID        int64
	RepoOwner string
	RepoName  string
	Secret    string
	Enabled   bool

	// Requester is nil when no CI provider is authorized.
	Requester      Requester
	ResponderSlack *SlackResponderConfig
}

// MissingConfig reports whether the project still lacks a requester or a responder.
func (p Project) MissingConfig() bool {
	return p.Requester == nil || p.ResponderSlack == nil
}

// CircleCI returns the active CircleCI configuration, if any.
func (p Project) CircleCI() *CircleCIConfig {
	cfg, _ := p.Requester.(*CircleCIConfig)
	return cfg
}

// TravisCI returns the active Travis CI configuration, if any.
func (p Project) TravisCI() *TravisCIConfig {
	cfg, _ := p.Requester.(*TravisCIConfig)
	return cfg
}

// AzureDevOps returns the active Azure DevOps configuration, if any.
func (p Project) AzureDevOps() *AzureDevOpsConfig {
	cfg, _ := p.Requester.(*AzureDevOpsConfig)
	return cfg
}
