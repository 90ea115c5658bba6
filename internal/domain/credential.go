package domain

import "strings"

// Credential is the long-lived OAuth1 access token bound to an API environment.
type Credential struct {
	AccessToken       string
	AccessTokenSecret string
	BaseURL           string
}

func (c Credential) Complete() bool {
	return strings.TrimSpace(c.AccessToken) != "" &&
		strings.TrimSpace(c.AccessTokenSecret) != "" &&
		strings.TrimSpace(c.BaseURL) != ""
}

type Environment string

const (
	EnvironmentSandbox Environment = "sandbox"
	EnvironmentLive    Environment = "live"
)
