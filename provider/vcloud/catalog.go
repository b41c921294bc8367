package vcloud

import (
	"bytes"
	"fmt"

	"github.com/bbazan/vCD-Catalog/common"
	"github.com/bbazan/vCD-Catalog/models"
)

type catalogManager struct {
	transport common.Transport
}

// newCatalogManager creates a CatalogManager over the transport
func newCatalogManager(transport common.Transport) (common.CatalogManager, error) {
	return &catalogManager{transport: transport}, nil
}

func (manager *catalogManager) CreateCatalog(session *common.Session, org *models.AdminOrg, catalog *models.AdminCatalog) error {
	payload, err := models.Marshal(catalog)
	if err != nil {
		return err
	}

	uri := manager.createLink(org)
	log.Debugf("Creating catalog '%s' at '%s'", catalog.Name, uri)
	_, err = manager.transport.Invoke(uri, session.Token, models.MimeAdminCatalog, "POST", bytes.NewReader(payload))
	return err
}

func (manager *catalogManager) PublishCatalog(session *common.Session, catalog *models.AdminCatalog, params *models.PublishExternalCatalogParams) error {
	payload, err := models.Marshal(params)
	if err != nil {
		return err
	}

	uri := fmt.Sprintf("%s/action/publishToExternalOrganizations", catalog.HREF)
	log.Debugf("Publishing catalog '%s' at '%s'", catalog.Name, uri)
	_, err = manager.transport.Invoke(uri, session.Token, models.MimePublishExternalCatalogParams, "POST", bytes.NewReader(payload))
	return err
}

// createLink prefers the org's advertised add link for catalogs and
// falls back to the conventional path
func (manager *catalogManager) createLink(org *models.AdminOrg) string {
	for _, link := range org.Link {
		if link.Rel == models.RelAdd && link.Type == models.MimeAdminCatalog {
			return link.HREF
		}
	}
	return fmt.Sprintf("%s/catalogs", org.HREF)
}
