package identity

import (
	"bookings-gateway/internal/app/config"
	"bookings-gateway/internal/app/contracts"
	"bookings-gateway/internal/pkg/constvars"
	"bookings-gateway/internal/pkg/exceptions"
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"go.uber.org/zap"
)

type tokenAcquirer struct {
	Identity   config.AppIdentity
	Scope      string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewTokenAcquirer(identity config.AppIdentity, scope string, httpClient *http.Client, logger *zap.Logger) contracts.TokenAcquirer {
	return &tokenAcquirer{
		Identity:   identity,
		Scope:      scope,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

// AcquireToken builds a fresh credential on every call. azidentity caches
// tokens per credential, so a new credential is what keeps every inbound
// request on its own token exchange.
func (a *tokenAcquirer) AcquireToken(ctx context.Context) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	a.Log.Info("tokenAcquirer.AcquireToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, a.Identity.TenantID),
		zap.String(constvars.LoggingClientIDKey, a.Identity.ClientID),
		zap.String(constvars.LoggingScopeKey, a.Scope),
	)

	credential, err := azidentity.NewClientSecretCredential(
		a.Identity.TenantID,
		a.Identity.ClientID,
		a.Identity.ClientSecret,
		a.credentialOptions(),
	)
	if err != nil {
		a.Log.Error("tokenAcquirer.AcquireToken error building credential",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrBuildCredential(err)
	}

	token, err := credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{a.Scope},
	})
	if err != nil {
		a.Log.Error("tokenAcquirer.AcquireToken error exchanging client credential",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrAcquireToken(err)
	}

	if token.Token == "" {
		a.Log.Error("tokenAcquirer.AcquireToken identity provider returned no access token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return "", exceptions.ErrEmptyAccessToken()
	}

	a.logTokenClaims(requestID, token.Token)

	a.Log.Info("tokenAcquirer.AcquireToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingTokenExpiresOnKey, token.ExpiresOn),
	)
	return token.Token, nil
}

// credentialOptions disables the SDK retry policy so a request makes a single
// exchange attempt.
func (a *tokenAcquirer) credentialOptions() *azidentity.ClientSecretCredentialOptions {
	options := &azidentity.ClientSecretCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: cloud.Configuration{
				ActiveDirectoryAuthorityHost: a.Identity.AuthorityHost,
			},
			Retry: policy.RetryOptions{
				MaxRetries: -1,
			},
		},
	}
	if a.HTTPClient != nil {
		options.ClientOptions.Transport = a.HTTPClient
	}
	return options
}

func (a *tokenAcquirer) logTokenClaims(requestID, accessToken string) {
	if !a.Log.Core().Enabled(zap.DebugLevel) {
		return
	}

	claims, err := inspectAccessToken(accessToken)
	if err != nil {
		a.Log.Debug("tokenAcquirer.AcquireToken access token is not a readable JWT",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenAppIDKey, claims.AppID),
		zap.Strings(constvars.LoggingTokenRolesKey, claims.Roles),
	}
	if claims.ExpiresAt != nil {
		fields = append(fields, zap.Time(constvars.LoggingTokenExpiresOnKey, claims.ExpiresAt.Time))
	}
	a.Log.Debug("tokenAcquirer.AcquireToken token claims", fields...)
}
