package models

import "encoding/xml"

// Reference is a named pointer to another vCD object
type Reference struct {
	HREF string `xml:"href,attr"`
	Type string `xml:"type,attr,omitempty"`
	Name string `xml:"name,attr,omitempty"`
}

// Link is a navigational relation carried by most vCD objects
type Link struct {
	HREF string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr,omitempty"`
	Name string `xml:"name,attr,omitempty"`
}

// OrgList is the response of the org listing endpoint
type OrgList struct {
	XMLName xml.Name     `xml:"OrgList"`
	Org     []*Reference `xml:"Org"`
}

// AdminOrg is the administrative view of an organization, carrying
// references to its catalogs and VDCs
type AdminOrg struct {
	XMLName  xml.Name      `xml:"AdminOrg"`
	Name     string        `xml:"name,attr"`
	HREF     string        `xml:"href,attr,omitempty"`
	Catalogs *CatalogsList `xml:"Catalogs"`
	Vdcs     *VdcsList     `xml:"Vdcs"`
	Link     []*Link       `xml:"Link"`
}

// CatalogsList holds the catalog references of an AdminOrg
type CatalogsList struct {
	CatalogReference []*Reference `xml:"CatalogReference"`
}

// VdcsList holds the VDC references of an AdminOrg
type VdcsList struct {
	Vdc []*Reference `xml:"Vdc"`
}

// Vdc is a virtual datacenter, the unit that declares storage profiles
type Vdc struct {
	XMLName            xml.Name            `xml:"Vdc"`
	Name               string              `xml:"name,attr"`
	HREF               string              `xml:"href,attr,omitempty"`
	VdcStorageProfiles *VdcStorageProfiles `xml:"VdcStorageProfiles"`
}

// VdcStorageProfiles holds the storage profile references of a Vdc
type VdcStorageProfiles struct {
	VdcStorageProfile []*Reference `xml:"VdcStorageProfile"`
}

// AdminCatalog is both the creation request document and the
// administrative representation of a catalog
type AdminCatalog struct {
	XMLName                           xml.Name                           `xml:"AdminCatalog"`
	Xmlns                             string                             `xml:"xmlns,attr,omitempty"`
	Name                              string                             `xml:"name,attr"`
	HREF                              string                             `xml:"href,attr,omitempty"`
	Description                       string                             `xml:"Description,omitempty"`
	ExternalCatalogSubscriptionParams *ExternalCatalogSubscriptionParams `xml:"ExternalCatalogSubscriptionParams,omitempty"`
	PublishExternalCatalogParams      *PublishExternalCatalogParams      `xml:"PublishExternalCatalogParams,omitempty"`
	CatalogStorageProfiles            *CatalogStorageProfiles            `xml:"CatalogStorageProfiles,omitempty"`
	Tasks                             *TasksInProgress                   `xml:"Tasks,omitempty"`
	IsPublished                       bool                               `xml:"IsPublished,omitempty"`
	Link                              []*Link                            `xml:"Link,omitempty"`
}

// PublishExternalCatalogParams controls external publication of a catalog.
// Field order matches the platform schema; CatalogPublishedUrl is only
// populated on responses.
type PublishExternalCatalogParams struct {
	XMLName                  xml.Name `xml:"PublishExternalCatalogParams"`
	Xmlns                    string   `xml:"xmlns,attr,omitempty"`
	IsPublishedExternally    bool     `xml:"IsPublishedExternally"`
	CatalogPublishedUrl      string   `xml:"CatalogPublishedUrl,omitempty"`
	Password                 string   `xml:"Password,omitempty"`
	IsCacheEnabled           *bool    `xml:"IsCacheEnabled,omitempty"`
	PreserveIdentityInfoFlag *bool    `xml:"PreserveIdentityInfoFlag,omitempty"`
}

// ExternalCatalogSubscriptionParams subscribes a catalog to a
// remote published feed
type ExternalCatalogSubscriptionParams struct {
	XMLName                  xml.Name `xml:"ExternalCatalogSubscriptionParams"`
	SubscribeToExternalFeeds bool     `xml:"SubscribeToExternalFeeds"`
	Location                 string   `xml:"Location"`
	Password                 string   `xml:"Password,omitempty"`
	LocalCopy                bool     `xml:"LocalCopy"`
}

// CatalogStorageProfiles pins a catalog's content to specific
// storage profiles
type CatalogStorageProfiles struct {
	VdcStorageProfile []*Reference `xml:"VdcStorageProfile"`
}

// TasksInProgress is the task list attached to freshly mutated objects
type TasksInProgress struct {
	Task []*Task `xml:"Task"`
}

// Task is a single asynchronous platform operation
type Task struct {
	Status    string     `xml:"status,attr"`
	Operation string     `xml:"operation,attr,omitempty"`
	Error     *TaskError `xml:"Error"`
}

// TaskError carries the platform's failure detail for a task
type TaskError struct {
	MajorErrorCode int    `xml:"majorErrorCode,attr,omitempty"`
	MinorErrorCode string `xml:"minorErrorCode,attr,omitempty"`
	Message        string `xml:"message,attr"`
}
