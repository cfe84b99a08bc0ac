// Package validator checks requester credentials against the CI provider that issued them.
package validator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"release-config-exchange/config"
	"release-config-exchange/internal/entities"
	"release-config-exchange/internal/metrics"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// maxDrain bounds how much of an ignored response body is read before closing it.
const maxDrain = 64 << 10

// Outcome is the tri-state result of a credential check.
type Outcome int

const (
	Valid Outcome = iota
	InvalidCredentials
	Unreachable
)

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "valid"
	case InvalidCredentials:
		return "invalid_credentials"
	case Unreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Verdict is what a provider said about a set of credentials.
type Verdict struct {
	Outcome Outcome
	// Message is user-facing and only set for InvalidCredentials.
	Message string
	Context ProviderContext
}

// ProviderContext carries provider data learned while validating.
type ProviderContext struct {
	// AzureProjectID is the id of the Azure DevOps project matched by name.
	AzureProjectID string
}

// Target is the repository the credentials are meant to act on.
type Target struct {
	RepoOwner string
	RepoName  string
}

// Validator performs a read-only call to one provider.
// A non-nil error means the provider could not be asked, never that it said no.
type Validator interface {
	Provider() entities.Provider
	Validate(ctx context.Context, target Target, creds entities.Credentials) (Verdict, error)
}

func valid(pc ProviderContext) Verdict {
	return Verdict{Outcome: Valid, Context: pc}
}

func invalid(msg string) Verdict {
	return Verdict{Outcome: InvalidCredentials, Message: msg}
}

// NewHTTPClient returns the client shared by the provider validators.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   timeout,
	}
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrain))
	_ = body.Close()
}

// Registry dispatches credential checks by provider kind.
type Registry struct {
	log        *zap.SugaredLogger
	validators map[entities.Provider]Validator
}

// NewRegistry indexes the given validators by provider.
func NewRegistry(log *zap.SugaredLogger, validators ...Validator) *Registry {
	r := &Registry{
		log:        log.Named("validator"),
		validators: make(map[entities.Provider]Validator, len(validators)),
	}
	for _, v := range validators {
		r.validators[v.Provider()] = v
	}
	return r
}

// New builds a registry holding validators for every supported provider.
func New(log *zap.SugaredLogger, cfg config.ProvidersConfig) *Registry {
	client := NewHTTPClient(cfg.Timeout)
	return NewRegistry(log,
		NewCircleCI(client, cfg.CircleCIURL),
		NewTravisCI(client, cfg.TravisCIURL),
		NewAzureDevOps(log, client, cfg.AzureDevOpsURL),
	)
}

// Check validates creds with the provider's validator.
// Transport faults are folded into an Unreachable verdict; the only error is an unknown provider.
func (r *Registry) Check(ctx context.Context, provider entities.Provider, target Target, creds entities.Credentials) (Verdict, error) {
	v, ok := r.validators[provider]
	if !ok {
		return Verdict{}, fmt.Errorf("%w: %q", entities.ErrUnknownProvider, provider)
	}

	start := time.Now()
	verdict, err := v.Validate(ctx, target, creds)
	took := time.Since(start)
	if err != nil {
		r.log.Warnw("provider unreachable",
			"provider", provider,
			"repo", target.RepoOwner+"/"+target.RepoName,
			"error", err,
		)
		verdict = Verdict{Outcome: Unreachable}
	}

	metrics.ObserveValidation(string(provider), verdict.Outcome.String(), took)
	r.log.Infow("credentials checked",
		"provider", provider,
		"repo", target.RepoOwner+"/"+target.RepoName,
		"verdict", verdict.Outcome.String(),
		"duration_ms", float64(took.Microseconds())/1000.0,
	)
	return verdict, nil
}
