// Package secrets retrieves database credentials from the AWS SSM parameter
// store.
package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Credentials holds the database username and password.
type Credentials struct {
	Username string
	Password string
}

// ParameterAPI is the slice of the SSM client used here.
type ParameterAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Provider fetches named parameters with decryption.
type Provider struct {
	client        ParameterAPI
	usernameParam string
	passwordParam string
}

// NewProvider builds a Provider backed by the default AWS configuration chain
// for the given region.
func NewProvider(ctx context.Context, region, usernameParam, passwordParam string) (*Provider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config, ensure your AWS environment variables are set: %w", err)
	}
	return &Provider{
		client:        ssm.NewFromConfig(cfg),
		usernameParam: usernameParam,
		passwordParam: passwordParam,
	}, nil
}

// NewProviderWithClient builds a Provider around an existing parameter client.
func NewProviderWithClient(client ParameterAPI, usernameParam, passwordParam string) *Provider {
	return &Provider{client: client, usernameParam: usernameParam, passwordParam: passwordParam}
}

// DatabaseCredentials fetches the username and password parameters.
func (p *Provider) DatabaseCredentials(ctx context.Context) (Credentials, error) {
	username, err := p.parameter(ctx, p.usernameParam)
	if err != nil {
		return Credentials{}, err
	}
	password, err := p.parameter(ctx, p.passwordParam)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Username: username, Password: password}, nil
}

func (p *Provider) parameter(ctx context.Context, name string) (string, error) {
	out, err := p.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("retrieve parameter %s from the AWS store: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", name)
	}
	return *out.Parameter.Value, nil
}
