package common

import (
	"io"

	"github.com/bbazan/vCD-Catalog/models"
)

// Context defines the context object passed around
type Context struct {
	Config           Config
	Sessions         SessionFinder
	DirectoryManager DirectoryManager
	CatalogManager   CatalogManager
}

// Session is an authenticated, host-scoped connection handle. The core
// only reads it and threads it through remote calls.
type Session struct {
	Host  string
	Token string
}

// Transport performs one authenticated HTTP exchange against the
// platform. Error reporting from the platform passes through unmodified.
type Transport interface {
	Invoke(uri string, sessionToken string, contentType string, method string, body io.Reader) ([]byte, error)
}

// SessionFinder looks up the active session for an endpoint host
type SessionFinder interface {
	FindSession(host string) (*Session, error)
}

// OrgResolver resolves an organization by name
type OrgResolver interface {
	GetOrg(session *Session, name string) (*models.AdminOrg, error)
}

// VdcLister enumerates the resource containers of an organization
type VdcLister interface {
	GetOrgVdcs(session *Session, org *models.AdminOrg) ([]*models.Vdc, error)
}

// CatalogGetter resolves a catalog by name within an organization
type CatalogGetter interface {
	GetCatalog(session *Session, org *models.AdminOrg, name string) (*models.AdminCatalog, error)
}

// CatalogLister enumerates the catalogs of an organization
type CatalogLister interface {
	ListCatalogs(session *Session, org *models.AdminOrg) ([]*models.AdminCatalog, error)
}

// DirectoryManager composite of all read-only directory lookups
type DirectoryManager interface {
	OrgResolver
	VdcLister
	CatalogGetter
	CatalogLister
}

// CatalogCreator issues the catalog creation call
type CatalogCreator interface {
	CreateCatalog(session *Session, org *models.AdminOrg, catalog *models.AdminCatalog) error
}

// CatalogPublisher issues the publish action against an existing catalog
type CatalogPublisher interface {
	PublishCatalog(session *Session, catalog *models.AdminCatalog, params *models.PublishExternalCatalogParams) error
}

// CatalogManager composite of all mutating catalog capabilities
type CatalogManager interface {
	CatalogCreator
	CatalogPublisher
}

// OutcomeState classifies the sync state of a freshly subscribed catalog
type OutcomeState int

// Available outcome states
const (
	OutcomeSuccess OutcomeState = iota
	OutcomeInProgress
	OutcomeError
	OutcomeUnknown
)

// Outcome is the caller-facing result of the subscribed-creation flow
type Outcome struct {
	State  OutcomeState
	Detail string
}

// CatalogResult is the caller-facing result of a catalog operation
type CatalogResult struct {
	PublishedURL string
	Outcome      Outcome
}

// NewContext create a new context object
func NewContext() *Context {
	ctx := new(Context)
	ctx.Config.Tokens = make(map[string]string)
	return ctx
}
