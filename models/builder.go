package models

import (
	"bytes"
	"encoding/xml"
)

// NewAdminCatalog builds the creation document for a catalog spec. The
// document root carries name and description, exactly one of the
// publish/subscription blocks per the spec's mode, and the resolved
// storage profile reference when one is supplied. encoding/xml escapes
// all caller-supplied text on marshal.
func NewAdminCatalog(spec *CatalogSpec, storageProfile *Reference) (*AdminCatalog, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	catalog := &AdminCatalog{
		Xmlns:       XMLNamespace,
		Name:        spec.Name,
		Description: spec.Description,
	}

	switch spec.Mode {
	case ModePublish:
		catalog.PublishExternalCatalogParams = newPublishBlock(spec.Publish)
	case ModeSubscribe:
		catalog.ExternalCatalogSubscriptionParams = &ExternalCatalogSubscriptionParams{
			SubscribeToExternalFeeds: true,
			Location:                 spec.Subscription.Location,
			Password:                 spec.Subscription.Password,
			LocalCopy:                spec.Subscription.LocalCopy,
		}
	}

	if storageProfile != nil {
		catalog.CatalogStorageProfiles = &CatalogStorageProfiles{
			VdcStorageProfile: []*Reference{storageProfile},
		}
	}

	return catalog, nil
}

// NewPublishExternalCatalogParams builds the standalone document for the
// publish action on an existing catalog. It carries only the publication
// flag and password.
func NewPublishExternalCatalogParams(settings *PublishSettings) *PublishExternalCatalogParams {
	return &PublishExternalCatalogParams{
		Xmlns:                 XMLNamespace,
		IsPublishedExternally: settings.PublishedExternally,
		Password:              settings.Password,
	}
}

func newPublishBlock(settings *PublishSettings) *PublishExternalCatalogParams {
	cacheEnabled := settings.CacheEnabled
	preserveIdentity := settings.PreserveIdentityInfo
	return &PublishExternalCatalogParams{
		IsPublishedExternally:    settings.PublishedExternally,
		Password:                 settings.Password,
		IsCacheEnabled:           &cacheEnabled,
		PreserveIdentityInfoFlag: &preserveIdentity,
	}
}

// Marshal renders a request document with the standard XML header
func Marshal(doc interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	buffer := new(bytes.Buffer)
	buffer.WriteString(xml.Header)
	buffer.Write(body)
	return buffer.Bytes(), nil
}
