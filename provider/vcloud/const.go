package vcloud

import (
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("vcloud")

const (
	orgListPath  = "/api/org/"
	adminOrgPath = "/api/admin/org/"

	// API version negotiated on every request
	acceptHeader = "application/*+xml;version=5.5"

	// session token header used by vCD
	authHeader = "x-vcloud-authorization"
)
