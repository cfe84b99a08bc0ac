// Package api holds the JSON shapes of the HTTP interface.
package api

import "time"

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CredentialsBody carries requester credentials; organizationName and projectName are Azure DevOps only.
type CredentialsBody struct {
	AccessToken      string `json:"accessToken"`
	OrganizationName string `json:"organizationName,omitempty"`
	ProjectName      string `json:"projectName,omitempty"`
}

// SwapRequesterRequest selects the provider in the body.
type SwapRequesterRequest struct {
	Provider    string          `json:"provider"`
	Credentials CredentialsBody `json:"credentials"`
}

// UpdateResponderRequest is the PATCH body of the Slack responder.
type UpdateResponderRequest struct {
	UsernameToMention string `json:"usernameToMention"`
}

// Project is the full project representation returned to its administrators.
type Project struct {
	ID                   int64                 `json:"id"`
	RepoOwner            string                `json:"repoOwner"`
	RepoName             string                `json:"repoName"`
	Secret               string                `json:"secret"`
	Enabled              bool                  `json:"enabled"`
	RequesterCircleCI    *TokenRequester       `json:"requester_circleCI"`
	RequesterTravisCI    *TokenRequester       `json:"requester_travisCI"`
	RequesterAzureDevOps *AzureDevOpsRequester `json:"requester_AzureDevOps"`
	ResponderSlack       *SlackResponder       `json:"responder_slack"`
	MissingConfig        bool                  `json:"missingConfig"`
}

// TokenRequester is a CircleCI or Travis CI requester.
type TokenRequester struct {
	AccessToken string `json:"accessToken"`
}

// AzureDevOpsRequester is an Azure DevOps requester.
type AzureDevOpsRequester struct {
	AccessToken      string `json:"accessToken"`
	OrganizationName string `json:"organizationName"`
	ProjectName      string `json:"projectName"`
}

// SlackResponder is the linked Slack channel.
type SlackResponder struct {
	TeamName          string `json:"teamName"`
	ChannelName       string `json:"channelName"`
	TeamIcon          string `json:"teamIcon"`
	UsernameToMention string `json:"usernameToMention"`
}

// Linker is a pending Slack association.
type Linker struct {
	ID        string    `json:"id"`
	ProjectID int64     `json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
}

// LinkResponse starts the Slack OAuth handshake.
type LinkResponse struct {
	Linker        Linker `json:"linker"`
	SlackClientID string `json:"slackClientId"`
}
