package vcloud

import (
	"crypto/tls"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/bbazan/vCD-Catalog/common"
)

type httpTransport struct {
	client *http.Client
}

// NewTransport creates the default Transport over net/http. Timeout and
// certificate checking are the transport's concern; the workflows never
// construct one themselves.
func NewTransport(insecure bool) common.Transport {
	client := &http.Client{
		Timeout: 60 * time.Second,
	}
	if insecure {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &httpTransport{client: client}
}

func (transport *httpTransport) Invoke(uri string, sessionToken string, contentType string, method string, body io.Reader) ([]byte, error) {
	request, err := http.NewRequest(method, uri, body)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to build %s request for '%s'", method, uri)
	}
	request.Header.Set("Accept", acceptHeader)
	if sessionToken != "" {
		request.Header.Set(authHeader, sessionToken)
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	log.Debugf("%s %s", method, uri)
	response, err := transport.client.Do(request)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to invoke '%s'", uri)
	}
	defer response.Body.Close()

	payload, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read response from '%s'", uri)
	}

	if response.StatusCode >= 400 {
		return nil, common.RemoteCallError{
			Method:     method,
			URI:        uri,
			StatusCode: response.StatusCode,
			Body:       string(payload),
		}
	}

	return payload, nil
}
