package entities

import (
	"fmt"
	"strings"
	"time"
)

// Provider identifies a CI system that may act as a requester.
type Provider string

const (
	ProviderCircleCI    Provider = "circleci"
	ProviderTravisCI    Provider = "travisci"
	ProviderAzureDevOps Provider = "azdo"
)

// Providers lists every supported requester kind.
var Providers = []Provider{ProviderCircleCI, ProviderTravisCI, ProviderAzureDevOps}

// ParseProvider maps a route slug to a Provider.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Providers {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
}

// Credentials are supplied by the project owner when authorizing a requester.
// OrganizationName and ProjectName are only used by Azure DevOps.
type Credentials struct {
	AccessToken      string
	OrganizationName string
	ProjectName      string
}

// Validate checks the fields required for the given provider.
func (c Credentials) Validate(p Provider) error {
	if c.AccessToken == "" {
		return fmt.Errorf("%w: accessToken is required", ErrInvalidArgument)
	}
	if p == ProviderAzureDevOps {
		if c.OrganizationName == "" {
			return fmt.Errorf("%w: organizationName is required", ErrInvalidArgument)
		}
		if c.ProjectName == "" {
			return fmt.Errorf("%w: projectName is required", ErrInvalidArgument)
		}
	}
	return nil
}

// Requester is the active requester configuration of a project.
// It is implemented only by the configuration types of this package.
type Requester interface {
	Provider() Provider
	Token() string
	isRequester()
}

// ConfigMeta is shared by all requester configuration records.
type ConfigMeta struct {
	ID        int64
	CreatedAt time.Time
}

// CircleCIConfig is an immutable CircleCI requester record.
type CircleCIConfig struct {
	ConfigMeta
	AccessToken string
}

// TravisCIConfig is an immutable Travis CI requester record.
type TravisCIConfig struct {
	ConfigMeta
	AccessToken string
}

// AzureDevOpsConfig is an immutable Azure DevOps requester record.
type AzureDevOpsConfig struct {
	ConfigMeta
	AccessToken      string
	OrganizationName string
	ProjectName      string
}

func (*CircleCIConfig) Provider() Provider    { return ProviderCircleCI }
func (*TravisCIConfig) Provider() Provider    { return ProviderTravisCI }
func (*AzureDevOpsConfig) Provider() Provider { return ProviderAzureDevOps }

func (c *CircleCIConfig) Token() string    { return c.AccessToken }
func (c *TravisCIConfig) Token() string    { return c.AccessToken }
func (c *AzureDevOpsConfig) Token() string { return c.AccessToken }

func (*CircleCIConfig) isRequester()    {}
func (*TravisCIConfig) isRequester()    {}
func (*AzureDevOpsConfig) isRequester() {}

// NewRequester builds an unsaved configuration record for the provider.
func NewRequester(p Provider, creds Credentials) (Requester, error) {
	switch p {
	case ProviderCircleCI:
		return &CircleCIConfig{AccessToken: creds.AccessToken}, nil
	case ProviderTravisCI:
		return &TravisCIConfig{AccessToken: creds.AccessToken}, nil
	case ProviderAzureDevOps:
		return &AzureDevOpsConfig{
			AccessToken:      creds.AccessToken,
			OrganizationName: creds.OrganizationName,
			ProjectName:      creds.ProjectName,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, p)
	}
}
