package identity

import (
	"bookings-gateway/internal/app/config"
	"bookings-gateway/internal/app/contracts"
	"bookings-gateway/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

const (
	testTenantID  = "11111111-1111-1111-1111-111111111111"
	testAuthority = "https://login.microsoftonline.com/"
)

func jsonResponse(r *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    r,
	}
}

// fakeIdentityProvider answers instance discovery, tenant discovery and the
// token endpoint. tokenBody builds the token response for the n-th POST.
func fakeIdentityProvider(tokenCalls *int32, tokenBody func(n int32) string) *http.Client {
	tenantBase := testAuthority + testTenantID
	return &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		switch {
		case strings.Contains(r.URL.Path, "discovery/instance"):
			return jsonResponse(r, http.StatusOK, fmt.Sprintf(`{
				"tenant_discovery_endpoint": "%s/v2.0/.well-known/openid-configuration",
				"api-version": "1.1",
				"metadata": [{"preferred_network": "login.microsoftonline.com", "preferred_cache": "login.windows.net", "aliases": ["login.microsoftonline.com"]}]
			}`, tenantBase)), nil
		case strings.Contains(r.URL.Path, "openid-configuration"):
			return jsonResponse(r, http.StatusOK, fmt.Sprintf(`{
				"token_endpoint": "%[1]s/oauth2/v2.0/token",
				"authorization_endpoint": "%[1]s/oauth2/v2.0/authorize",
				"issuer": "%[1]s/v2.0"
			}`, tenantBase)), nil
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/token"):
			n := atomic.AddInt32(tokenCalls, 1)
			return jsonResponse(r, http.StatusOK, tokenBody(n)), nil
		default:
			return jsonResponse(r, http.StatusNotFound, `{}`), nil
		}
	})}
}

func newTestAcquirer(client *http.Client) contracts.TokenAcquirer {
	return NewTokenAcquirer(config.AppIdentity{
		ClientID:      "00000000-0000-0000-0000-000000000001",
		ClientSecret:  "secret",
		TenantID:      testTenantID,
		AuthorityHost: testAuthority,
	}, "https://graph.microsoft.com/.default", client, zap.NewNop())
}

func TestAcquireToken_FreshExchangePerCall(t *testing.T) {
	var tokenCalls int32
	client := fakeIdentityProvider(&tokenCalls, func(n int32) string {
		return fmt.Sprintf(`{"token_type":"Bearer","expires_in":3599,"ext_expires_in":3599,"access_token":"tok-%d"}`, n)
	})
	acquirer := newTestAcquirer(client)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	first, err := acquirer.AcquireToken(ctx)
	require.NoError(t, err)
	second, err := acquirer.AcquireToken(ctx)
	require.NoError(t, err)

	assert.Equal(t, "tok-1", first)
	assert.Equal(t, "tok-2", second)
	assert.Equal(t, int32(2), atomic.LoadInt32(&tokenCalls))
}

func TestAcquireToken_ResponseWithoutAccessTokenIsAuthError(t *testing.T) {
	var tokenCalls int32
	client := fakeIdentityProvider(&tokenCalls, func(int32) string {
		return `{"token_type":"Bearer","expires_in":3599}`
	})
	acquirer := newTestAcquirer(client)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	token, err := acquirer.AcquireToken(ctx)

	assert.Empty(t, token)
	var authErr *exceptions.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, exceptions.KindAuth, authErr.Kind())
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestAcquireToken_MissingTenantFailsWithAuthError(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("unexpected outbound call")
	})}

	acquirer := NewTokenAcquirer(config.AppIdentity{
		ClientID:     "client",
		ClientSecret: "secret",
	}, "https://graph.microsoft.com/.default", client, zap.NewNop())

	token, err := acquirer.AcquireToken(context.Background())

	assert.Empty(t, token)
	var authErr *exceptions.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, exceptions.KindAuth, authErr.Kind())
}

func TestAcquireToken_ExchangeFailureIsAuthError(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("identity provider unreachable")
	})}

	acquirer := NewTokenAcquirer(config.AppIdentity{
		ClientID:      "00000000-0000-0000-0000-000000000001",
		ClientSecret:  "secret",
		TenantID:      "contoso.onmicrosoft.com",
		AuthorityHost: "https://login.microsoftonline.com/",
	}, "https://graph.microsoft.com/.default", client, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	token, err := acquirer.AcquireToken(ctx)

	assert.Empty(t, token)
	var authErr *exceptions.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Error(), "failed to acquire access token")
}

func TestCredentialOptions_SingleAttempt(t *testing.T) {
	acquirer := &tokenAcquirer{
		Identity: config.AppIdentity{AuthorityHost: "https://login.microsoftonline.us/"},
		Log:      zap.NewNop(),
	}

	options := acquirer.credentialOptions()

	assert.Equal(t, int32(-1), options.ClientOptions.Retry.MaxRetries)
	assert.Equal(t, "https://login.microsoftonline.us/", options.ClientOptions.Cloud.ActiveDirectoryAuthorityHost)
	assert.Nil(t, options.ClientOptions.Transport)
}

func TestInspectAccessToken(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims{
		AppID: "00000000-0000-0000-0000-000000000001",
		Roles: []string{"Bookings.Read.All", "BookingsAppointment.ReadWrite.All"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}).SignedString([]byte("not-the-issuer-key"))
	require.NoError(t, err)

	claims, err := inspectAccessToken(signed)

	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", claims.AppID)
	assert.Equal(t, []string{"Bookings.Read.All", "BookingsAppointment.ReadWrite.All"}, claims.Roles)
	assert.True(t, expiresAt.Equal(claims.ExpiresAt.Time))
}

func TestInspectAccessToken_Opaque(t *testing.T) {
	_, err := inspectAccessToken("opaque-token")

	assert.Error(t, err)
}
