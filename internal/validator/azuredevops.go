package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"release-config-exchange/internal/entities"

	"go.uber.org/zap"
)

const (
	azureRejected = "That token is not valid for the current project, or the project is not available"
	// azurePATUser is the fixed basic-auth user name for personal access tokens.
	azurePATUser           = "PAT"
	azureContinuationToken = "X-Ms-Continuationtoken"
	// azureMaxPages stops runaway pagination on organizations with very many projects.
	azureMaxPages = 50
)

// AzureDevOps lists the organization's projects and looks for the configured one.
type AzureDevOps struct {
	log      *zap.SugaredLogger
	client   *http.Client
	baseURL  string
	maxPages int
}

// NewAzureDevOps returns a validator talking to the Azure DevOps REST API at baseURL.
func NewAzureDevOps(log *zap.SugaredLogger, client *http.Client, baseURL string) *AzureDevOps {
	return &AzureDevOps{
		log:      log.Named("validator.azdo"),
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxPages: azureMaxPages,
	}
}

func (a *AzureDevOps) Provider() entities.Provider { return entities.ProviderAzureDevOps }

type azureProjectList struct {
	Count int            `json:"count"`
	Value []azureProject `json:"value"`
}

type azureProject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate issues GET /{org}/_apis/projects/ and matches projectName case-insensitively.
// A working token whose organization lacks the project gets its own message.
func (a *AzureDevOps) Validate(ctx context.Context, _ Target, creds entities.Credentials) (Verdict, error) {
	endpoint := fmt.Sprintf("%s/%s/_apis/projects/", a.baseURL, url.PathEscape(creds.OrganizationName))

	continuation := ""
	for page := 0; page < a.maxPages; page++ {
		list, next, status, err := a.listProjects(ctx, endpoint, continuation, creds.AccessToken)
		if err != nil {
			return Verdict{}, err
		}
		if status != http.StatusOK {
			return invalid(azureRejected), nil
		}

		for _, p := range list.Value {
			if strings.EqualFold(p.Name, creds.ProjectName) {
				return valid(ProviderContext{AzureProjectID: p.ID}), nil
			}
		}

		if next == "" {
			continuation = ""
			break
		}
		continuation = next
	}

	if continuation != "" {
		a.log.Warnw("project listing truncated, reporting project as missing",
			"organization", creds.OrganizationName,
			"project", creds.ProjectName,
			"pages", a.maxPages,
		)
	}

	return invalid(fmt.Sprintf(
		"Seems that a project with name %q does not exist in the organization %q",
		creds.ProjectName, creds.OrganizationName,
	)), nil
}

func (a *AzureDevOps) listProjects(ctx context.Context, endpoint, continuation, token string) (azureProjectList, string, int, error) {
	var list azureProjectList

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return list, "", 0, fmt.Errorf("build azure devops request: %w", err)
	}
	if continuation != "" {
		q := req.URL.Query()
		q.Set("continuationToken", continuation)
		req.URL.RawQuery = q.Encode()
	}
	req.SetBasicAuth(azurePATUser, token)
	req.Header.Set("X-TFS-FedAuthRedirect", "Suppress")
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return list, "", 0, fmt.Errorf("azure devops projects: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return list, "", resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return list, "", resp.StatusCode, fmt.Errorf("decode azure devops projects: %w", err)
	}
	return list, resp.Header.Get(azureContinuationToken), resp.StatusCode, nil
}
