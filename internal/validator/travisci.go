package validator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"release-config-exchange/internal/entities"
)

const (
	travisAPIVersion = "3"
	travisCIRejected = "That token is not valid for the current project, or the repository is not configured on Travis CI"
)

// TravisCI fetches the repository resource with the token.
type TravisCI struct {
	client  *http.Client
	baseURL string
}

// NewTravisCI returns a validator talking to the Travis CI v3 API at baseURL.
func NewTravisCI(client *http.Client, baseURL string) *TravisCI {
	return &TravisCI{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (t *TravisCI) Provider() entities.Provider { return entities.ProviderTravisCI }

// Validate issues GET /repo/{owner}%2F{repo}; the slug must stay a single escaped path segment.
func (t *TravisCI) Validate(ctx context.Context, target Target, creds entities.Credentials) (Verdict, error) {
	slug := url.PathEscape(target.RepoOwner + "/" + target.RepoName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/repo/"+slug, nil)
	if err != nil {
		return Verdict{}, fmt.Errorf("build travis request: %w", err)
	}
	req.Header.Set("Travis-API-Version", travisAPIVersion)
	req.Header.Set("Authorization", "token "+creds.AccessToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return Verdict{}, fmt.Errorf("travis repo: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return invalid(travisCIRejected), nil
	}
	return valid(ProviderContext{}), nil
}
