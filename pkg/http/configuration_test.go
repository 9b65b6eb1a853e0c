package http_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gor_http "github.com/gorpipe/gor-source/pkg/http"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/http/client"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
)

func TestNewRoundTripperFromConfiguration(t *testing.T) {
	t.Run("AddHeaders", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, []string{"a", "b"}, r.Header.Values("X-Project"))
			require.Equal(t, "original", r.Header.Get("X-Original"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		roundTripper, err := gor_http.NewRoundTripperFromConfiguration(&pb.Configuration{
			AddHeaders: []*pb.HeaderValues{
				{Header: "X-Project", Values: []string{"a", "b"}},
			},
		})
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("X-Original", "original")
		resp, err := roundTripper.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		// The original request should not be modified.
		require.Empty(t, req.Header.Values("X-Project"))
	})

	t.Run("OAuth2ClientCredentials", func(t *testing.T) {
		tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"access_token": "my-token", "token_type": "Bearer", "expires_in": 3600}`)
		}))
		defer tokenServer.Close()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client, err := gor_http.NewClientFromConfiguration(&pb.Configuration{
			Oauth2: &pb.OAuth2Configuration{
				Scopes: []string{"read"},
				ClientCredentials: &pb.OAuth2ClientCredentials{
					ClientId:         "gor",
					ClientSecret:     "secret",
					TokenEndpointUrl: tokenServer.URL,
				},
			},
		}, "OAuth2Test")
		require.NoError(t, err)

		resp, err := client.Get(server.URL)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("InvalidProxyURL", func(t *testing.T) {
		_, err := gor_http.NewRoundTripperFromConfiguration(&pb.Configuration{
			ProxyUrl: "http://[::1",
		})
		require.Error(t, err)
	})

	t.Run("NegativeDialTimeout", func(t *testing.T) {
		_, err := gor_http.NewRoundTripperFromConfiguration(&pb.Configuration{
			DialTimeout: durationpb.New(-time.Second),
		})
		require.Equal(t, status.Error(codes.InvalidArgument, "Invalid dial timeout: Duration cannot be negative"), err)
	})

	t.Run("MissingOAuth2Credentials", func(t *testing.T) {
		_, err := gor_http.NewRoundTripperFromConfiguration(&pb.Configuration{
			Oauth2: &pb.OAuth2Configuration{},
		})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
