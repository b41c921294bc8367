package common

import "fmt"

// Warning is a non-fatal error that terminates a workflow without
// failing it
type Warning string

func (w Warning) Error() string {
	return string(w)
}

// NoSessionError indicates no authenticated session exists for a host
type NoSessionError struct {
	Host string
}

func (e NoSessionError) Error() string {
	return fmt.Sprintf("No session found for host '%s', connect to the endpoint first", e.Host)
}

// OrgNotFoundError indicates the named organization does not resolve
type OrgNotFoundError struct {
	Org string
}

func (e OrgNotFoundError) Error() string {
	return fmt.Sprintf("Unable to find org named '%s'", e.Org)
}

// CatalogNotFoundError indicates the named catalog does not resolve
// within its organization
type CatalogNotFoundError struct {
	Org     string
	Catalog string
}

func (e CatalogNotFoundError) Error() string {
	return fmt.Sprintf("Unable to find catalog named '%s' in org '%s'", e.Catalog, e.Org)
}

// RemoteCallError wraps a failed platform call, carrying the upstream
// status and body for diagnosis
type RemoteCallError struct {
	Method     string
	URI        string
	StatusCode int
	Body       string
}

func (e RemoteCallError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.URI, e.StatusCode, e.Body)
}

// CreatedStatusUnknownError indicates a catalog was created but the
// post-creation re-fetch failed, so its state is unreported. Distinct
// from a creation failure: the catalog exists remotely.
type CreatedStatusUnknownError struct {
	Catalog string
	Cause   error
}

func (e CreatedStatusUnknownError) Error() string {
	return fmt.Sprintf("catalog '%s' exists remotely but its status could not be read: %v", e.Catalog, e.Cause)
}
