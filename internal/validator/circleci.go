package validator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"release-config-exchange/internal/entities"
)

const circleCIRejected = "That token is not valid for the current project, or the repository is not configured on CircleCI"

// CircleCI reads the project's checkout keys, which requires a token scoped to the repo.
type CircleCI struct {
	client  *http.Client
	baseURL string
}

// NewCircleCI returns a validator talking to the CircleCI v1.1 API at baseURL.
func NewCircleCI(client *http.Client, baseURL string) *CircleCI {
	return &CircleCI{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *CircleCI) Provider() entities.Provider { return entities.ProviderCircleCI }

// Validate issues GET /project/github/{owner}/{repo}/checkout-key with the token as basic auth user.
func (c *CircleCI) Validate(ctx context.Context, target Target, creds entities.Credentials) (Verdict, error) {
	endpoint := fmt.Sprintf("%s/project/github/%s/%s/checkout-key",
		c.baseURL, url.PathEscape(target.RepoOwner), url.PathEscape(target.RepoName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Verdict{}, fmt.Errorf("build circleci request: %w", err)
	}
	req.SetBasicAuth(creds.AccessToken, "")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Verdict{}, fmt.Errorf("circleci checkout-key: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return invalid(circleCIRejected), nil
	}
	return valid(ProviderContext{}), nil
}
