package models

// XMLNamespace is the fixed namespace for all vCloud Director v1.5 documents
const XMLNamespace = "http://www.vmware.com/vcloud/v1.5"

// Media types for the requests and references used by the catalog flows
const (
	MimeAdminCatalog                 = "application/vnd.vmware.admin.catalog+xml"
	MimePublishExternalCatalogParams = "application/vnd.vmware.admin.publishExternalCatalogparams+xml"
	MimeAdminOrg                     = "application/vnd.vmware.admin.organization+xml"
	MimeVdc                          = "application/vnd.vmware.vcloud.vdc+xml"
	MimeVdcStorageProfile            = "application/vnd.vmware.vcloud.vdcStorageProfile+xml"
)

// Task status values reported by the platform
const (
	TaskStatusRunning = "running"
	TaskStatusError   = "error"
	TaskStatusSuccess = "success"
)

// RelDown is the link relation for contained objects
const RelDown = "down"

// RelAdd is the link relation for creation endpoints
const RelAdd = "add"
