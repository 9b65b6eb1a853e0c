package http

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"

	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/http/client"
	"github.com/gorpipe/gor-source/pkg/util"
)

// NewRoundTripperFromConfiguration makes a new HTTP RoundTripper on
// parameters provided in a configuration file. A nil configuration
// yields a transport with default parameters.
func NewRoundTripperFromConfiguration(configuration *pb.Configuration) (http.RoundTripper, error) {
	dialTimeout, err := util.OptionalDuration(configuration.GetDialTimeout(), "dial timeout")
	if err != nil {
		return nil, err
	}
	if dialTimeout == 0 {
		dialTimeout = 30 * time.Second
	}
	responseHeaderTimeout, err := util.OptionalDuration(configuration.GetResponseHeaderTimeout(), "response header timeout")
	if err != nil {
		return nil, err
	}
	defaultTransport := http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     !configuration.GetDisableHttp2(),
		ResponseHeaderTimeout: responseHeaderTimeout,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
	}
	if configuration.GetInsecureSkipVerify() {
		defaultTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	if proxyURL := configuration.GetProxyUrl(); proxyURL != "" {
		parsedProxyURL, err := url.Parse(proxyURL)
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to parse proxy URL")
		}
		defaultTransport.Proxy = http.ProxyURL(parsedProxyURL)
	} else {
		defaultTransport.Proxy = http.ProxyFromEnvironment
	}
	var roundTripper http.RoundTripper = &defaultTransport

	if headerValues := configuration.GetAddHeaders(); len(headerValues) > 0 {
		roundTripper = NewHeaderAddingRoundTripper(roundTripper, headerValues)
	}

	if oauth2Config := configuration.GetOauth2(); oauth2Config != nil {
		if roundTripper, err = NewOAuth2AddingRoundTripper(roundTripper, oauth2Config); err != nil {
			return nil, util.StatusWrap(err, "Failed to create OAuth2 round tripper")
		}
	}
	return roundTripper, nil
}
